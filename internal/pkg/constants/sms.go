package constants

// SMS defaults
const (
	DefaultCountryCode = "+91"
	DefaultSMSFrom     = "Vonage APIs"
	DefaultSMSBaseURL  = "https://api.nexmo.com"
	SMSMessagesPath    = "/v1/messages"

	ConfirmationMessage = "Thank you for confirming. Details have been shared with the requester. Please proceed to the location provided."
)
