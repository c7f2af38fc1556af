package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"anonchat/backend/internal/models"
	"anonchat/backend/internal/storage"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	storageSvc := storage.NewStorageService(db, nil) // No redis needed for admin CLI

	if len(os.Args) < 2 {
		usage()
	}

	switch os.Args[1] {
	case "reports":
		reports, err := storageSvc.GetReportsBySeen(false)
		if err != nil {
			log.Fatalf("Error listing reports: %v", err)
		}
		for _, r := range reports {
			fmt.Printf("#%d chat=%s issuer=%s issued=%s reason=%q\n",
				r.ID, r.ChatID, r.IssuerID, r.IssuedID, r.Reason)
		}
	case "report-seen":
		id := parseID(2, "admin report-seen <report_id>")
		if err := storageSvc.MarkReport(id, true); err != nil {
			log.Fatalf("Error marking report: %v", err)
		}
		fmt.Printf("Report %d marked as seen.\n", id)
	case "topic-requests":
		requests, err := storageSvc.GetRequestTopics()
		if err != nil {
			log.Fatalf("Error listing topic requests: %v", err)
		}
		for _, rt := range requests {
			fmt.Printf("#%d name=%q requested_by=%s status=%s\n",
				rt.ID, rt.Name, rt.RequestedBy, rt.Status)
		}
	case "approve-topic":
		id := parseID(2, "admin approve-topic <request_id>")
		if err := storageSvc.UpdateRequestTopicStatus(id, models.RequestTopicApproved); err != nil {
			log.Fatalf("Error approving topic request: %v", err)
		}
		fmt.Printf("Topic request %d approved.\n", id)
	case "reject-topic":
		id := parseID(2, "admin reject-topic <request_id>")
		if err := storageSvc.UpdateRequestTopicStatus(id, models.RequestTopicRejected); err != nil {
			log.Fatalf("Error rejecting topic request: %v", err)
		}
		fmt.Printf("Topic request %d rejected.\n", id)
	default:
		usage()
	}
}

func parseID(arg int, hint string) uint {
	if len(os.Args) <= arg {
		fmt.Println("Usage:", hint)
		os.Exit(1)
	}
	id, err := strconv.ParseUint(os.Args[arg], 10, 32)
	if err != nil {
		fmt.Println("Invalid id. Please provide an integer.")
		os.Exit(1)
	}
	return uint(id)
}

func usage() {
	fmt.Println("Usage: admin <command> [args]")
	fmt.Println("Commands: reports, report-seen, topic-requests, approve-topic, reject-topic")
	os.Exit(1)
}
