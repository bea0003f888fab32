package fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/mindfultrack/mindfultrack/services"
)

type submitEntryInput struct {
	Mood        int      `json:"mood"`
	Sleep       float64  `json:"sleep"`
	Journal     string   `json:"journal"`
	Medications []string `json:"medications"`
}

// submitEntry persists the dashboard form. The response does not wait for
// the suggestion; clients poll /recent or /today for it.
func (a *Adapter) submitEntry(c fiber.Ctx) error {
	var input submitEntryInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	result, err := a.mt.Entries.Submit(c.Context(), services.SubmitInput{
		UserID:      currentUser(c).ID,
		Mood:        input.Mood,
		Sleep:       input.Sleep,
		Journal:     input.Journal,
		Medications: input.Medications,
	})
	if err != nil {
		return a.handleError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"journalId":   result.JournalID,
		"summary":     result.Summary,
		"submittedAt": result.SubmittedAt,
	})
}

func (a *Adapter) recentEntries(c fiber.Ctx) error {
	entries, err := a.mt.Entries.Recent(c.Context(), currentUser(c).ID)
	if err != nil {
		return a.handleError(c, err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"entries": entries})
}

func (a *Adapter) todayEntries(c fiber.Ctx) error {
	snapshot, err := a.mt.Entries.Today(c.Context(), currentUser(c).ID)
	if err != nil {
		return a.handleError(c, err)
	}
	return c.Status(http.StatusOK).JSON(snapshot)
}

func (a *Adapter) deleteAccount(c fiber.Ctx) error {
	if err := a.mt.Accounts.Delete(c.Context(), currentUser(c).ID); err != nil {
		return a.handleError(c, err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "account deleted",
	})
}
