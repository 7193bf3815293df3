package models

// JSON Schema documents for each entity, served by the /schema endpoint to
// aid admin tooling. Declared by hand; keep in sync with the structs in
// this package.

func prop(t, desc string) map[string]any {
	p := map[string]any{"type": t}
	if desc != "" {
		p["description"] = desc
	}
	return p
}

func enumProp(def string, values ...string) map[string]any {
	return map[string]any{"type": "string", "enum": values, "default": def}
}

// CustomerSchema describes the Customer document.
func CustomerSchema() map[string]any {
	return map[string]any{
		"title": "Customer",
		"type":  "object",
		"properties": map[string]any{
			"name":              prop("string", "Full name"),
			"phone":             prop("string", "Phone number"),
			"email":             prop("string", "Email address"),
			"address":           prop("string", "Address for home services"),
			"preferred_contact": enumProp("phone", "phone", "email"),
		},
		"required": []string{"name", "phone"},
	}
}

// TechnicianSchema describes the Technician document.
func TechnicianSchema() map[string]any {
	return map[string]any{
		"title": "Technician",
		"type":  "object",
		"properties": map[string]any{
			"name":  prop("string", ""),
			"phone": prop("string", ""),
			"skills": map[string]any{
				"type":        "array",
				"items":       prop("string", ""),
				"description": "e.g., plumbing, electrical, auto-repair",
			},
			"lat":          map[string]any{"type": "number", "default": 0, "description": "Current latitude"},
			"lng":          map[string]any{"type": "number", "default": 0, "description": "Current longitude"},
			"is_available": map[string]any{"type": "boolean", "default": true},
			"rating_avg":   map[string]any{"type": "number", "default": 0},
			"rating_count": map[string]any{"type": "integer", "default": 0},
		},
		"required": []string{"name", "phone"},
	}
}

// BookingSchema describes the Booking document.
func BookingSchema() map[string]any {
	return map[string]any{
		"title": "Booking",
		"type":  "object",
		"properties": map[string]any{
			"customer_name":  prop("string", ""),
			"contact_phone":  prop("string", ""),
			"contact_email":  prop("string", ""),
			"category":       map[string]any{"type": "string", "enum": []string{"home", "vehicle"}},
			"service_type":   prop("string", "Type of repair or maintenance"),
			"address":        prop("string", "Required for home services"),
			"vehicle_info":   prop("string", "Vehicle make/model if applicable"),
			"scheduled_time": map[string]any{"type": "string", "format": "date-time"},
			"price_quote":    map[string]any{"type": "number", "minimum": 0, "default": 0},
			"notes":          prop("string", ""),
			"status": enumProp(BookingStatusRequested,
				BookingStatusRequested, BookingStatusAssigned, BookingStatusEnRoute,
				BookingStatusInProgress, BookingStatusCompleted, BookingStatusCancelled),
			"technician_id": prop("string", ""),
		},
		"required": []string{"customer_name", "contact_phone", "category", "service_type", "scheduled_time"},
	}
}

// ReviewSchema describes the Review document.
func ReviewSchema() map[string]any {
	return map[string]any{
		"title": "Review",
		"type":  "object",
		"properties": map[string]any{
			"booking_id":    prop("string", ""),
			"technician_id": prop("string", ""),
			"rating":        map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
			"comment":       prop("string", ""),
		},
		"required": []string{"booking_id", "technician_id", "rating"},
	}
}

// PaymentSchema describes the Payment document.
func PaymentSchema() map[string]any {
	return map[string]any{
		"title": "Payment",
		"type":  "object",
		"properties": map[string]any{
			"booking_id":     prop("string", ""),
			"amount":         map[string]any{"type": "number", "minimum": 0},
			"currency":       enumProp("usd", "usd", "eur", "gbp"),
			"provider":       enumProp(PaymentProviderMock, PaymentProviderMock),
			"status":         enumProp(PaymentStatusPending, PaymentStatusPending, PaymentStatusSucceeded, PaymentStatusFailed),
			"transaction_id": prop("string", ""),
		},
		"required": []string{"booking_id", "amount"},
	}
}

// Schemas bundles every entity schema keyed by entity name.
func Schemas() map[string]any {
	return map[string]any{
		"customer":   CustomerSchema(),
		"technician": TechnicianSchema(),
		"booking":    BookingSchema(),
		"review":     ReviewSchema(),
		"payment":    PaymentSchema(),
	}
}
