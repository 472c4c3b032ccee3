package main

import (
	"context"
	"log"
	"time"

	"minddock/internal/bootstrap"
	"minddock/internal/dto"
	"minddock/internal/entity"
	"minddock/internal/pkg/apperror"
)

const demoCanvas = `{"type":"excalidraw","version":2,"elements":[],"appState":{"viewBackgroundColor":"#ffffff"}}`

var demoCaptures = []string{
	"todo Review pull requests",
	"todo Plan sprint goals",
	"note Standup moved to 10:30 starting next week",
	"Idea: keep a running list of small wins for the weekly review",
}

// SeedWorkspace goes through the services so seeded records look exactly like
// ones created over the API. Running it twice is harmless for the daily log
// and adds nothing once a folder exists.
func SeedWorkspace(ctx context.Context, c *bootstrap.Container) error {
	folders, err := c.WhiteboardFolderService.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(folders) > 0 {
		log.Printf("Workspace already has %d folder(s), skipping records...", len(folders))
		return seedToday(ctx, c)
	}

	folder, err := c.WhiteboardFolderService.Create(ctx, &dto.CreateWhiteboardFolderRequest{Name: "Work"})
	if err != nil {
		return err
	}
	log.Printf("Created folder: %s", folder.Name)

	board, err := c.WhiteboardService.Create(ctx, &dto.CreateWhiteboardRequest{
		Title:          "Architecture sketch",
		ExcalidrawJson: demoCanvas,
		FolderId:       &folder.Id,
	})
	if err != nil {
		return err
	}
	log.Printf("Created whiteboard: %s", board.Title)

	for _, text := range demoCaptures {
		res, err := c.CaptureService.Capture(ctx, &dto.CaptureRequest{Text: text})
		if err != nil {
			return err
		}
		log.Printf("Captured %s: %s", res.Type, text)
	}

	return seedToday(ctx, c)
}

func seedToday(ctx context.Context, c *bootstrap.Container) error {
	today := time.Now().UTC().Format(entity.DateLayout)
	workedOn, blockers, learned, focus := "Set up MindDock", "None", "Quick capture prefixes", "Clear the todo list"

	_, err := c.DailyLogService.Create(ctx, &dto.CreateDailyLogRequest{
		Date:          today,
		WorkedOn:      &workedOn,
		Blockers:      &blockers,
		Learned:       &learned,
		TomorrowFocus: &focus,
	})
	if apperror.IsConflict(err) {
		log.Printf("Daily log for %s already exists, skipping...", today)
		return nil
	}
	if err != nil {
		return err
	}
	log.Printf("Created daily log for %s", today)
	return nil
}
