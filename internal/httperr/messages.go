package httperr

var messages = map[string]string{
	"unauthorized":          "Unauthorized: invalid or missing token",
	"not_a_customer":        "Access denied: Not a customer",
	"not_a_barber":          "Access denied: Not a barber",
	"not_an_admin":          "Access denied: Not an admin",
	"slot_taken":            "This slot is already booked.",
	"email_taken":           "Email is already registered.",
	"appointment_not_found": "Appointment not found.",
	"barber_not_found":      "Barber not found.",
	"service_not_found":     "Service not found.",
	"invalid_state":         "Appointment cannot move to that status.",
	"invalid_date":          "Invalid date, expected YYYY-MM-DD.",
	"invalid_slot":          "Time must be one of the bookable slots.",
	"date_in_past":          "Date is in the past.",
	"no_services":           "At least one service is required.",
	"invalid_quantity":      "Quantity must be between 1 and 10.",
	"invalid_status":        "Unknown status.",
	"invalid_amount":        "Amount must be at least 0.01.",
}

// Message is the client-facing text for a business code, or the code itself
// when none is registered.
func Message(code string) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return code
}
