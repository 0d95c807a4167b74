package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/viennasuites/internal/config"
	"github.com/jask/viennasuites/internal/content"
	"github.com/jask/viennasuites/internal/database"
	"github.com/jask/viennasuites/internal/database/repository"
	"github.com/jask/viennasuites/internal/logbook"
	"github.com/jask/viennasuites/internal/service"
	"github.com/jask/viennasuites/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	for _, dir := range []string{filepath.Dir(cfg.Database.Path), filepath.Dir(cfg.Log.Path)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	logs, err := logbook.New(cfg.Log.Path)
	if err != nil {
		log.Fatalf("logbook: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	catalog, err := loadCatalog(cfg.Content.Path)
	if err != nil {
		log.Fatalf("content: %v", err)
	}

	// repositories
	bookingRepo := repository.NewBookingRepo(db)
	inquiryRepo := repository.NewInquiryRepo(db)

	// services
	bookings := &service.BookingService{Bookings: bookingRepo, Suites: catalog.SuiteNames(), Delay: cfg.Submit.Delay}
	inquiries := &service.ContactService{Inquiries: inquiryRepo, Delay: cfg.Submit.Delay}
	maintenance := &service.MaintenanceService{DB: db}

	if len(os.Args) > 1 {
		if err := runCommand(ctx, os.Args[1], bookingRepo, maintenance, logs); err != nil {
			log.Fatalf("%s: %v", os.Args[1], err)
		}
		return
	}

	app := tui.New(ctx, cfg, catalog, tui.Deps{Bookings: bookings, Inquiries: inquiries, Log: logs})
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logs.Error("program: %v", err)
		fmt.Printf("error: %v\n", err)
	}
}

func loadCatalog(path string) (*content.Catalog, error) {
	if path == "" {
		return content.Default()
	}
	return content.Load(path)
}

func runCommand(ctx context.Context, name string, bookings *repository.BookingRepo, maintenance *service.MaintenanceService, logs *logbook.Logbook) error {
	switch name {
	case "reset":
		if err := maintenance.Reset(ctx); err != nil {
			return err
		}
		logs.Warn("stored requests wiped")
		fmt.Println("all booking requests and messages deleted")
		return nil
	case "bookings":
		list, err := bookings.List(ctx, repository.BookingFilters{})
		if err != nil {
			return err
		}
		for _, b := range list {
			fmt.Printf("%s  %s -> %s  %d night(s)  %d+%d  %-16s %s\n",
				b.ID[:8], b.CheckIn.Format(repository.DateLayout), b.CheckOut.Format(repository.DateLayout),
				b.Nights(), b.Adults, b.Children, b.Suite, b.Status)
		}
		return nil
	case "log":
		lines, total := logs.Tail(20)
		for _, l := range lines {
			fmt.Println(l)
		}
		fmt.Printf("(%d of %d entries)\n", len(lines), total)
		return nil
	}
	return fmt.Errorf("unknown command (want reset, bookings or log)")
}
