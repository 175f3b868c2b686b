// Package listing implements create/update/delete of the current user's
// equipment, including the pending image batch handled before upload.
package listing

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/nmil1484-source/the-wild-share/internal/api"
	"github.com/nmil1484-source/the-wild-share/internal/models"
)

var validate = validator.New()

// Form carries the listing fields prior to submission. Pointer fields are
// optional; the rest are required.
type Form struct {
	Name            string          `validate:"required"`
	Description     string          `validate:"required"`
	Category        models.Category `validate:"required,oneof=bikes water camping power gear"`
	DailyPrice      *float64        `validate:"required,gte=0"`
	WeeklyPrice     *float64        `validate:"omitempty,gte=0"`
	MonthlyPrice    *float64        `validate:"omitempty,gte=0"`
	CapacitySpec    string          `validate:"required"`
	Location        string          `validate:"required"`
	SecurityDeposit *float64        `validate:"omitempty,gte=0"`
}

// EmptyForm returns a cleared form with the default category.
func EmptyForm() Form {
	return Form{Category: models.CategoryBikes}
}

// FormFromItem loads an item's current values into a form, as when the edit
// dialog opens.
func FormFromItem(item *models.EquipmentItem) Form {
	daily := item.DailyPrice
	return Form{
		Name:            item.Name,
		Description:     item.Description,
		Category:        item.Category,
		DailyPrice:      &daily,
		WeeklyPrice:     item.WeeklyPrice,
		MonthlyPrice:    item.MonthlyPrice,
		CapacitySpec:    item.CapacitySpec,
		Location:        item.Location,
		SecurityDeposit: item.SecurityDeposit,
	}
}

// Validate checks the client-side preconditions before any network call.
func (f *Form) Validate() error {
	if err := validate.Struct(f); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return fmt.Errorf("invalid %s: failed '%s' check", errs[0].Field(), errs[0].Tag())
		}
		return err
	}
	return nil
}

// payload builds the API payload. imageURLs stays nil when no new images
// were uploaded so the server-side gallery is left untouched on update.
func (f *Form) payload(imageURLs []string) api.EquipmentPayload {
	return api.EquipmentPayload{
		Name:            f.Name,
		Description:     f.Description,
		Category:        f.Category,
		DailyPrice:      *f.DailyPrice,
		WeeklyPrice:     f.WeeklyPrice,
		MonthlyPrice:    f.MonthlyPrice,
		CapacitySpec:    f.CapacitySpec,
		Location:        f.Location,
		SecurityDeposit: f.SecurityDeposit,
		ImageURLs:       imageURLs,
	}
}
