package crisis

import (
	"context"

	"mindcare-service/internal/app/contracts"
	"mindcare-service/internal/app/models"
	"mindcare-service/internal/pkg/dto/responses"
)

var helplines = []models.CrisisHelpline{
	{
		Name:        "TELEMANAS (Tele Mental Health Assistance)",
		Number:      "14416",
		Description: "National tele-mental health program",
		Hours:       "Available 24/7",
		Featured:    true,
	},
	{
		Name:        "KIRAN Mental Health Helpline",
		Number:      "1800-599-0019",
		Description: "24/7 toll-free helpline",
		Hours:       "Available 24/7",
	},
	{
		Name:        "Vandrevala Foundation",
		Number:      "1860-2662-345",
		Description: "Mental health support",
		Hours:       "24/7",
	},
	{
		Name:        "iCall Psychosocial Helpline",
		Number:      "022-25521111",
		Description: "Professional counseling",
		Hours:       "Mon-Sat, 8 AM - 10 PM",
	},
	{
		Name:        "Snehi",
		Number:      "91-22-27546669",
		Description: "Crisis intervention",
		Hours:       "24/7",
	},
}

type crisisUsecase struct{}

func NewCrisisUsecase() contracts.CrisisUsecase {
	return &crisisUsecase{}
}

func (uc *crisisUsecase) FindAllHelplines(ctx context.Context) []responses.CrisisHelpline {
	result := make([]responses.CrisisHelpline, len(helplines))
	for i, helpline := range helplines {
		result[i] = responses.CrisisHelpline{
			Name:        helpline.Name,
			Number:      helpline.Number,
			Description: helpline.Description,
			Hours:       helpline.Hours,
			Featured:    helpline.Featured,
		}
	}
	return result
}
