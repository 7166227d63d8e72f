package domain

// Time format constants
const (
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02 15:04" // YYYY-MM-DD HH:MM
)

// Business validation constants
const (
	MaxCancellationReasonLength = 500
	MaxRequestMessageLength     = 500
	MaxGroupNameLength          = 100
	MaxGuestsPerBooking         = 100
)

// Названия групп по умолчанию для связей между гостями
const (
	DefaultFriendshipGroup = "Friends"
	DirectCompanionsGroup  = "Personal Companions"
	ConnectedGuestsGroup   = "Connected Guests"
)

// DefaultLanguage язык, на который откатываются переводы
const DefaultLanguage = "en"
