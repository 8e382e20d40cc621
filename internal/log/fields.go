package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldQuery      = "query"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"

	FieldClientPhone = "client_phone"
	FieldCarPlate    = "car_plate"
	FieldVisitDate   = "visit_date"
	FieldAmountCents = "amount_cents"
)

// Components defines standard component names
const (
	ComponentApp    = "app"
	ComponentHTTP   = "http"
	ComponentWorker = "worker"
)
