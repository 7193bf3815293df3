package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"oncall/handlers"
	"oncall/models"
	"oncall/routes"
	"oncall/services/booking"
	"oncall/services/directory"
	"oncall/services/payment"
	"oncall/services/review"
	"oncall/services/tracking"
	"oncall/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type testEnv struct {
	router      *gin.Engine
	bookings    *memBookingRepo
	technicians *memTechnicianRepo
	payments    *memPaymentRepo
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)
	logger := utils.GetLogger()

	bookings := newMemBookingRepo()
	technicians := newMemTechnicianRepo()
	reviews := &memReviewRepo{}
	payments := newMemPaymentRepo()
	customers := newMemCustomerRepo()

	bookingHandler := handlers.NewBookingHandler(&booking.DefaultBookingService{Repo: bookings}, logger)
	trackingHandler := handlers.NewTrackingHandler(&tracking.DefaultTrackingService{Repo: technicians}, logger)
	reviewHandler := handlers.NewReviewHandler(&review.DefaultReviewService{Reviews: reviews, Technicians: technicians}, logger)
	paymentHandler := handlers.NewPaymentHandler(&payment.DefaultPaymentService{Repo: payments}, logger)
	directoryHandler := handlers.NewDirectoryHandler(&directory.DefaultDirectoryService{Customers: customers, Technicians: technicians}, logger)

	router := gin.New()
	routes.RegisterRoutes(router, &handlers.HandlerBundle{
		CreateBooking:    bookingHandler.CreateBooking,
		ListBookings:     bookingHandler.ListBookings,
		AssignTechnician: bookingHandler.AssignTechnician,

		UpdateLocation: trackingHandler.UpdateLocation,
		GetLocation:    trackingHandler.GetLocation,

		CreateReview: reviewHandler.CreateReview,

		CreatePaymentIntent: paymentHandler.CreateIntent,
		ConfirmPayment:      paymentHandler.ConfirmPayment,

		CreateCustomer:   directoryHandler.CreateCustomer,
		ListCustomers:    directoryHandler.ListCustomers,
		CreateTechnician: directoryHandler.CreateTechnician,
		ListTechnicians:  directoryHandler.ListTechnicians,

		Root:         handlers.Root,
		TestDatabase: handlers.TestDatabase,
		GetSchema:    handlers.GetSchema,
	})

	return &testEnv{
		router:      router,
		bookings:    bookings,
		technicians: technicians,
		payments:    payments,
	}
}

func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON response %q: %v", w.Body.String(), err)
	}
	return out
}

const bookingBody = `{
	"customer_name": "Jae Park",
	"contact_phone": "+15550100",
	"category": "home",
	"service_type": "plumbing",
	"address": "12 Oak Lane",
	"scheduled_time": "2026-09-02T10:00:00Z"
}`

func TestRootBanner(t *testing.T) {
	env := newTestEnv()
	w := env.do(t, http.MethodGet, "/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := decodeJSON(t, w)["message"]; got != "On-Call Repairs & Maintenance Backend Running" {
		t.Errorf("message = %v", got)
	}
}

func TestDiagnosticsWithoutStore(t *testing.T) {
	env := newTestEnv()
	w := env.do(t, http.MethodGet, "/test", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	resp := decodeJSON(t, w)
	if resp["backend"] != "✅ Running" {
		t.Errorf("backend = %v", resp["backend"])
	}
	if resp["connection_status"] != "Not Connected" {
		t.Errorf("connection_status = %v without a store", resp["connection_status"])
	}
}

func TestSchemaListsEveryEntity(t *testing.T) {
	env := newTestEnv()
	w := env.do(t, http.MethodGet, "/schema", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	schemas := decodeJSON(t, w)
	for _, entity := range []string{"customer", "technician", "booking", "review", "payment"} {
		if _, ok := schemas[entity]; !ok {
			t.Errorf("schema missing entity %q", entity)
		}
	}
}

func TestCreateAndListBooking(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/bookings", bookingBody)
	if w.Code != http.StatusOK {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}
	id, _ := decodeJSON(t, w)["id"].(string)
	if id == "" {
		t.Fatal("create returned no id")
	}

	w = env.do(t, http.MethodGet, "/bookings", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var list []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("list decode: %v", err)
	}
	found := false
	for _, item := range list {
		if item["id"] == id {
			found = true
			if item["status"] != models.BookingStatusRequested {
				t.Errorf("status = %v, want requested", item["status"])
			}
			if _, present := item["_id"]; present {
				t.Error("internal _id leaked into response")
			}
		}
	}
	if !found {
		t.Errorf("booking %s missing from list", id)
	}
}

func TestCreateBookingRejectsBadCategory(t *testing.T) {
	env := newTestEnv()
	body := strings.Replace(bookingBody, `"home"`, `"boat"`, 1)
	if w := env.do(t, http.MethodPost, "/bookings", body); w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestAssignTechnician(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/bookings", bookingBody)
	bookingID, _ := decodeJSON(t, w)["id"].(string)
	techID := primitive.NewObjectID().Hex()

	w = env.do(t, http.MethodPost, "/bookings/assign",
		`{"booking_id":"`+bookingID+`","technician_id":"`+techID+`","extra":"ignored"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("assign status = %d, body %s", w.Code, w.Body.String())
	}
	if decodeJSON(t, w)["ok"] != true {
		t.Errorf("response = %s, want ok:true", w.Body.String())
	}

	stored := env.bookings.docs[bookingID]
	if stored.Status != models.BookingStatusAssigned || stored.TechnicianID != techID {
		t.Errorf("stored booking = %+v, want assigned to %s", stored, techID)
	}
}

func TestAssignTechnicianErrors(t *testing.T) {
	env := newTestEnv()

	cases := []struct {
		name string
		body string
		want int
	}{
		{"missing booking id", `{"technician_id":"t1"}`, http.StatusBadRequest},
		{"missing technician id", `{"booking_id":"` + primitive.NewObjectID().Hex() + `"}`, http.StatusBadRequest},
		{"malformed booking id", `{"booking_id":"nope","technician_id":"t1"}`, http.StatusBadRequest},
		{"unknown booking id", `{"booking_id":"` + primitive.NewObjectID().Hex() + `","technician_id":"t1"}`, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if w := env.do(t, http.MethodPost, "/bookings/assign", tc.body); w.Code != tc.want {
				t.Errorf("status = %d, want %d", w.Code, tc.want)
			}
		})
	}
}

func TestTrackingUpsertAndFetch(t *testing.T) {
	env := newTestEnv()
	techID := primitive.NewObjectID().Hex()

	w := env.do(t, http.MethodPost, "/track/update",
		`{"technician_id":"`+techID+`","lat":-1.2921,"lng":36.8219}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", w.Code, w.Body.String())
	}

	// Second update overwrites.
	w = env.do(t, http.MethodPost, "/track/update",
		`{"technician_id":"`+techID+`","lat":0,"lng":36.9}`)
	if w.Code != http.StatusOK {
		t.Fatalf("second update status = %d (zero lat must be accepted)", w.Code)
	}

	w = env.do(t, http.MethodGet, "/track/"+techID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	loc := decodeJSON(t, w)
	if loc["lat"] != 0.0 || loc["lng"] != 36.9 {
		t.Errorf("location = %v, want lat 0 lng 36.9", loc)
	}
}

func TestTrackingErrors(t *testing.T) {
	env := newTestEnv()

	if w := env.do(t, http.MethodPost, "/track/update", `{"technician_id":"t1","lat":1}`); w.Code != http.StatusBadRequest {
		t.Errorf("missing lng: status = %d, want 400", w.Code)
	}
	if w := env.do(t, http.MethodPost, "/track/update", `{"lat":1,"lng":2}`); w.Code != http.StatusBadRequest {
		t.Errorf("missing technician_id: status = %d, want 400", w.Code)
	}
	if w := env.do(t, http.MethodGet, "/track/not-an-oid", ""); w.Code != http.StatusBadRequest {
		t.Errorf("malformed id: status = %d, want 400", w.Code)
	}
	if w := env.do(t, http.MethodGet, "/track/"+primitive.NewObjectID().Hex(), ""); w.Code != http.StatusNotFound {
		t.Errorf("unknown id: status = %d, want 404", w.Code)
	}
}

func TestReviewFlowUpdatesAggregate(t *testing.T) {
	env := newTestEnv()

	// Register a technician through the normal creation flow.
	w := env.do(t, http.MethodPost, "/technicians", `{"name":"Rae","phone":"+15550111","skills":["electrical"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create technician status = %d, body %s", w.Code, w.Body.String())
	}
	techID, _ := decodeJSON(t, w)["id"].(string)
	bookingID := primitive.NewObjectID().Hex()

	for _, rating := range []int{5, 3, 4} {
		body, _ := json.Marshal(map[string]any{
			"booking_id":    bookingID,
			"technician_id": techID,
			"rating":        rating,
		})
		if w := env.do(t, http.MethodPost, "/reviews", string(body)); w.Code != http.StatusOK {
			t.Fatalf("create review status = %d, body %s", w.Code, w.Body.String())
		}
	}

	tech := env.technicians.docs[techID]
	if tech.RatingAvg != 4.0 {
		t.Errorf("rating_avg = %v, want 4.0", tech.RatingAvg)
	}
	if tech.RatingCount != 3 {
		t.Errorf("rating_count = %d, want 3", tech.RatingCount)
	}
}

func TestReviewSucceedsWithMalformedTechnicianID(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/reviews",
		`{"booking_id":"b1","technician_id":"not-an-oid","rating":5}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: aggregate failure must not surface", w.Code)
	}
	if id, _ := decodeJSON(t, w)["id"].(string); id == "" {
		t.Error("review id missing")
	}
}

func TestReviewRejectsOutOfRangeRating(t *testing.T) {
	env := newTestEnv()
	for _, rating := range []string{"0", "6"} {
		w := env.do(t, http.MethodPost, "/reviews",
			`{"booking_id":"b1","technician_id":"t1","rating":`+rating+`}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("rating %s: status = %d, want 400", rating, w.Code)
		}
	}
}

func TestPaymentIntentAndConfirm(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/payments/intent",
		`{"booking_id":"`+primitive.NewObjectID().Hex()+`","amount":99.99,"currency":"eur"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("intent status = %d, body %s", w.Code, w.Body.String())
	}
	resp := decodeJSON(t, w)
	txID, _ := resp["transaction_id"].(string)
	if resp["client_secret"] != "mock_secret_"+txID {
		t.Errorf("client_secret = %v, want mock_secret_%s", resp["client_secret"], txID)
	}
	if env.payments.docs[txID].Status != models.PaymentStatusPending {
		t.Errorf("persisted status = %q, want pending", env.payments.docs[txID].Status)
	}

	// Confirm twice; both calls must report succeeded.
	for i := 0; i < 2; i++ {
		w = env.do(t, http.MethodPost, "/payments/confirm", `{"transaction_id":"`+txID+`"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("confirm #%d status = %d", i+1, w.Code)
		}
		if decodeJSON(t, w)["status"] != models.PaymentStatusSucceeded {
			t.Errorf("confirm #%d status field = %s", i+1, w.Body.String())
		}
	}
}

func TestPaymentConfirmUnmatchedIDSucceeds(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/payments/confirm",
		`{"transaction_id":"`+primitive.NewObjectID().Hex()+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for unmatched id", w.Code)
	}
	if decodeJSON(t, w)["status"] != models.PaymentStatusSucceeded {
		t.Errorf("body = %s, want status succeeded", w.Body.String())
	}
}

func TestPaymentConfirmValidation(t *testing.T) {
	env := newTestEnv()

	if w := env.do(t, http.MethodPost, "/payments/confirm", `{}`); w.Code != http.StatusBadRequest {
		t.Errorf("empty body: status = %d, want 400", w.Code)
	}
	if w := env.do(t, http.MethodPost, "/payments/confirm", `{"transaction_id":"nope"}`); w.Code != http.StatusBadRequest {
		t.Errorf("malformed id: status = %d, want 400", w.Code)
	}
}

func TestPaymentIntentRequiresAmount(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/payments/intent",
		`{"booking_id":"`+primitive.NewObjectID().Hex()+`"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("omitted amount: status = %d, want 400", w.Code)
	}

	// An explicit zero amount is still valid.
	w = env.do(t, http.MethodPost, "/payments/intent",
		`{"booking_id":"`+primitive.NewObjectID().Hex()+`","amount":0}`)
	if w.Code != http.StatusOK {
		t.Errorf("zero amount: status = %d, body %s", w.Code, w.Body.String())
	}

	w = env.do(t, http.MethodPost, "/payments/intent",
		`{"booking_id":"`+primitive.NewObjectID().Hex()+`","amount":-5}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("negative amount: status = %d, want 400", w.Code)
	}
}

func TestPaymentIntentRejectsBadCurrency(t *testing.T) {
	env := newTestEnv()
	w := env.do(t, http.MethodPost, "/payments/intent",
		`{"booking_id":"b1","amount":10,"currency":"btc"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCustomerRoster(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/customers",
		`{"name":"Dana Reyes","phone":"+15550123","preferred_contact":"email","email":"dana@example.com"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}

	if w := env.do(t, http.MethodPost, "/customers", `{"name":"No Phone"}`); w.Code != http.StatusBadRequest {
		t.Errorf("missing phone: status = %d, want 400", w.Code)
	}

	w = env.do(t, http.MethodGet, "/customers", "")
	var list []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("list decode: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("customers = %d, want 1", len(list))
	}
}

func TestListTechniciansLimit(t *testing.T) {
	env := newTestEnv()

	for i := 0; i < 3; i++ {
		if w := env.do(t, http.MethodPost, "/technicians", `{"name":"T","phone":"+15550100"}`); w.Code != http.StatusOK {
			t.Fatalf("create technician status = %d", w.Code)
		}
	}

	w := env.do(t, http.MethodGet, "/technicians?limit=2", "")
	var list []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("list decode: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("technicians = %d, want 2 with limit=2", len(list))
	}

	if w := env.do(t, http.MethodGet, "/technicians?limit=abc", ""); w.Code != http.StatusBadRequest {
		t.Errorf("bad limit: status = %d, want 400", w.Code)
	}
}
