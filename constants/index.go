package constants

// Roles
const (
	ROLE_ADMIN = "ADMIN"
	ROLE_STAFF = "STAFF"
)

var Roles = []string{ROLE_ADMIN, ROLE_STAFF}

// Reservation statuses
const (
	RESERVATION_PENDING   = "PENDING"
	RESERVATION_ACCEPTED  = "ACCEPTED"
	RESERVATION_DECLINED  = "DECLINED"
	RESERVATION_CANCELLED = "CANCELLED"
	RESERVATION_COMPLETED = "COMPLETED"
)

var ReservationStatuses = []string{
	RESERVATION_PENDING,
	RESERVATION_ACCEPTED,
	RESERVATION_DECLINED,
	RESERVATION_CANCELLED,
	RESERVATION_COMPLETED,
}

// Time slots
const (
	SLOT_LUNCH        = "LUNCH"
	SLOT_EARLY_DINNER = "EARLY_DINNER"
	SLOT_DINNER       = "DINNER"
)

var TimeSlots = []string{SLOT_LUNCH, SLOT_EARLY_DINNER, SLOT_DINNER}

// Payment statuses
const (
	PAYMENT_PENDING  = "PENDING"
	PAYMENT_PAID     = "PAID"
	PAYMENT_FAILED   = "FAILED"
	PAYMENT_REFUNDED = "REFUNDED"
)

var PaymentStatuses = []string{PAYMENT_PENDING, PAYMENT_PAID, PAYMENT_FAILED, PAYMENT_REFUNDED}

// Payment methods
const (
	METHOD_CASH  = "CASH"
	METHOD_GCASH = "GCASH"
)

var PaymentMethods = []string{METHOD_CASH, METHOD_GCASH}

// Business rules
const (
	MIN_GUESTS           = 50
	MAX_GUESTS           = 150
	MIN_LEAD_TIME_DAYS   = 7
	MAX_ACCEPTED_PER_DAY = 2
	MIN_STREET_LENGTH    = 5
)

// Messages
const (
	MISSING_LOGIN_INPUT      = "Username and password are required"
	INVALID_USERNAME         = "Username does not exist"
	INVALID_PASSWORD         = "Incorrect password"
	ACCOUNT_NOT_ACTIVE       = "Account has been deactivated"
	NOT_ADMIN                = "Administrator permission required"
	NOT_STAFF                = "Staff permission required"
	NOT_LOGGED_IN            = "Please sign in"
	NOT_OWNER                = "This reservation belongs to another customer"
	ERROR_INTERNAL_ERROR     = "Internal server error"
	DATA_INPUT_IS_NOT_NUMBER = "Input must be a number"
	INVALID_INPUT            = "Invalid input"
	RESERVATION_NOT_FOUND    = "Reservation not found"
	PAYMENT_NOT_FOUND        = "Payment not found"
	PRODUCT_NOT_FOUND        = "Product not found"
	CATEGORY_NOT_FOUND       = "Category not found"
	CUSTOMER_NOT_FOUND       = "Customer not found"
)
