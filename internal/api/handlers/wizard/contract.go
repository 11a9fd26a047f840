package wizard

import (
	"github.com/m04kA/DMar-BookingService/internal/service/booking/models"
)

type WizardService interface {
	View(sessionID string) (*models.WizardView, error)
	SelectMode(sessionID string, req *models.SelectModeRequest) (*models.WizardView, error)
	ChoosePackage(sessionID string, req *models.ChoosePackageRequest) (*models.WizardView, error)
	SetDates(sessionID string, req *models.SetDatesRequest) (*models.WizardView, error)
	ChooseAccommodation(sessionID string, req *models.ChooseAccommodationRequest) (*models.WizardView, error)
	ToggleActivity(sessionID string, activityID int64) (*models.WizardView, error)
	ToggleService(sessionID string, serviceID int64) (*models.WizardView, error)
	SetGuests(sessionID string, req *models.SetGuestsRequest) (*models.WizardView, error)
	SetCustomer(sessionID string, req *models.CustomerRequest) (*models.WizardView, error)
	Next(sessionID string) (*models.WizardView, error)
	Back(sessionID string) (*models.WizardView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
