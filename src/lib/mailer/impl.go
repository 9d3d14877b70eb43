package mailer

import (
	"ems/src/lib"
	"fmt"
	"os"
)

// NewMailerMessage sends a notification email synchronously. Delivery errors
// propagate to the caller and fail the request that triggered them.
func NewMailerMessage(input *lib.SendMailInput) error {
	if input.From == "" {
		input.From = os.Getenv("DEFAULT_FROM_EMAIL")
	}
	if input.FromName == "" {
		input.FromName = os.Getenv("DEFAULT_FROM_NAME")
	}
	if err := lib.SendMail(input); err != nil {
		return fmt.Errorf("error sending mail: %s", err.Error())
	}
	return nil
}
