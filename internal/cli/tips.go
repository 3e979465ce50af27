package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dcastano/finanzapp/internal/tips"
)

// nowFn is a test seam for the tip-of-day clock.
var nowFn = time.Now

// ShowTip prints the deterministic tip of the day.
func (a *App) ShowTip(ctx context.Context) error {
	tip := tips.TipOfDay(nowFn())
	fmt.Printf("%s [%s/%s]\n%s\n", tip.Title, tip.Category, tip.Difficulty, tip.Content)
	return nil
}

// ListTips prompts for a category filter and prints the matching catalog
// entries. An empty answer lists everything.
func (a *App) ListTips(ctx context.Context) error {
	category, err := getSimpleText(a.reader, "Enter category (empty for all)", os.Stdout)
	if err != nil {
		return err
	}
	if category == "" {
		category = tips.CategoryAll
	}

	matching := tips.All(category)
	if len(matching) == 0 {
		fmt.Println("No tips in that category.")
		return nil
	}
	for _, tip := range matching {
		fmt.Printf("%d. %s [%s/%s]\n   %s\n", tip.ID, tip.Title, tip.Category, tip.Difficulty, tip.Content)
	}
	return nil
}
