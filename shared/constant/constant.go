package constant

const (
	RoleCustomer = "customer"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

// Top level menu choices.
const (
	ChoiceCreateUser = 1
	ChoiceLogIn      = 2
	ChoiceExit       = 9
)

// Authenticated menu choices. Manager choices 5..10 reuse numbers that mean
// something else at the top level.
const (
	ChoiceViewHotels          = 1
	ChoiceViewRooms           = 2
	ChoiceBookRoom            = 3
	ChoiceViewRecentBookings  = 4
	ChoiceUpdateRoomInfo      = 5
	ChoiceViewRecentUpdates   = 6
	ChoiceViewBookingHistory  = 7
	ChoiceViewRegularCustomer = 8
	ChoicePlaceRepairRequest  = 9
	ChoiceViewRepairHistory   = 10
	ChoiceLogOut              = 20
)

const (
	// BookingDateLayout is the Month/Day/Year layout users type dates in.
	BookingDateLayout = "01/02/2006"
	DisplayDateLayout = "01/02/2006"
	TimestampLayout   = "2006-01-02 15:04:05"
	SQLDateLayout     = "2006-01-02"
)

const (
	DefaultSearchRadius = 30.0
	DefaultRecentLimit  = 5
)

const (
	AvailabilityBooked    = "Booked"
	AvailabilityAvailable = "Available"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"

	OtelQueryAttributeKey = "query"
)

const (
	PqErrorCodeUniqueViolation  = "23505"
	PqErrorClassConnectionError = "08"
)

const Tab = "\t"
