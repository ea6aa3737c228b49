package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/ngofin/ledgersync/internal/core/domain"
)

// RegisterValidations adds the custom binding rules used by the query DTOs.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// sourcetype restricts a filter value to the known journal source types.
	_ = v.RegisterValidation("sourcetype", func(fl validator.FieldLevel) bool {
		switch domain.SourceType(fl.Field().String()) {
		case domain.SourceExpense, domain.SourcePayment, domain.SourceFundReceipt:
			return true
		}
		return false
	})
}
