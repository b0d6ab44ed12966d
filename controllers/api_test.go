package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-reservation/controllers"
	"hotel-reservation/models"
	"hotel-reservation/routes"
	"hotel-reservation/services"
)

func parseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestRouter(t *testing.T) (*gin.Engine, *services.HotelService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hotel, err := models.NewHotel("Test Hotel")
	if err != nil {
		t.Fatalf("NewHotel: %v", err)
	}
	svc := services.NewHotelService(hotel)

	router := routes.SetupRouter(
		controllers.NewRoomController(svc),
		controllers.NewGuestController(svc),
		controllers.NewBookingController(svc, 0.10),
		controllers.NewReportController(svc),
		[]string{"*"},
	)
	return router, svc
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return w, env
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", w.Code)
	}
}

func TestCreateRoomEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w, env := doJSON(t, router, http.MethodPost, "/api/rooms", gin.H{
		"number": 101, "room_type": "single", "price_per_night": 100.0,
	})
	if w.Code != http.StatusCreated || !env.Success {
		t.Fatalf("create room: status=%d body=%s", w.Code, w.Body.String())
	}

	// duplicate number
	w, env = doJSON(t, router, http.MethodPost, "/api/rooms", gin.H{
		"number": 101, "room_type": "suite", "price_per_night": 250.0,
	})
	if w.Code != http.StatusBadRequest || env.Success {
		t.Errorf("duplicate room: status=%d body=%s", w.Code, w.Body.String())
	}

	// missing fields rejected by binding
	w, _ = doJSON(t, router, http.MethodPost, "/api/rooms", gin.H{"number": 102})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing fields: status=%d, want 400", w.Code)
	}
}

func TestRoomLookupEndpoints(t *testing.T) {
	router, svc := newTestRouter(t)
	svc.AddRoom(101, "single", 100.0)

	w, env := doJSON(t, router, http.MethodGet, "/api/rooms/101", nil)
	if w.Code != http.StatusOK || !env.Success {
		t.Errorf("get room: status=%d body=%s", w.Code, w.Body.String())
	}

	w, _ = doJSON(t, router, http.MethodGet, "/api/rooms/999", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("missing room: status=%d, want 404", w.Code)
	}

	w, _ = doJSON(t, router, http.MethodGet, "/api/rooms/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("non-numeric room: status=%d, want 400", w.Code)
	}
}

func TestBookingEndpoints(t *testing.T) {
	router, svc := newTestRouter(t)
	svc.AddRoom(101, "single", 100.0)
	guest, _ := svc.RegisterGuest("John", "john@example.com")

	w, env := doJSON(t, router, http.MethodPost, "/api/bookings", gin.H{
		"guest_id":    guest.GuestID,
		"room_number": 101,
		"check_in":    "2024-01-01",
		"check_out":   "2024-01-03",
	})
	if w.Code != http.StatusCreated || !env.Success {
		t.Fatalf("create booking: status=%d body=%s", w.Code, w.Body.String())
	}
	var created struct {
		BookingID string `json:"booking_id"`
		Status    string `json:"status"`
		Nights    int    `json:"nights"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode booking: %v", err)
	}
	if created.Status != "booked" || created.Nights != 2 {
		t.Errorf("created booking = %+v", created)
	}

	// overlapping interval conflicts
	w, _ = doJSON(t, router, http.MethodPost, "/api/bookings", gin.H{
		"guest_id":    guest.GuestID,
		"room_number": 101,
		"check_in":    "2024-01-02",
		"check_out":   "2024-01-04",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("overlapping booking: status=%d, want 409", w.Code)
	}

	// unknown guest
	w, _ = doJSON(t, router, http.MethodPost, "/api/bookings", gin.H{
		"guest_id":    "nobody",
		"room_number": 101,
		"check_in":    "2024-02-01",
		"check_out":   "2024-02-03",
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown guest: status=%d, want 404", w.Code)
	}

	// bad date format
	w, _ = doJSON(t, router, http.MethodPost, "/api/bookings", gin.H{
		"guest_id":    guest.GuestID,
		"room_number": 101,
		"check_in":    "01/02/2024",
		"check_out":   "2024-02-03",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad date: status=%d, want 400", w.Code)
	}

	// check-in on the wrong date
	path := fmt.Sprintf("/api/bookings/%s/checkin", created.BookingID)
	w, _ = doJSON(t, router, http.MethodPost, path, gin.H{"date": "2024-01-02"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("wrong-date check-in: status=%d, want 400", w.Code)
	}

	// lifecycle through the API
	w, _ = doJSON(t, router, http.MethodPost, path, gin.H{"date": "2024-01-01"})
	if w.Code != http.StatusOK {
		t.Fatalf("check-in: status=%d body=%s", w.Code, w.Body.String())
	}

	w, env = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/bookings/%s/checkout", created.BookingID), gin.H{"date": "2024-01-03"})
	if w.Code != http.StatusOK {
		t.Fatalf("check-out: status=%d body=%s", w.Code, w.Body.String())
	}
	var checkout struct {
		Total float64 `json:"total"`
	}
	if err := json.Unmarshal(env.Data, &checkout); err != nil {
		t.Fatalf("decode checkout: %v", err)
	}
	if checkout.Total != 200.0 {
		t.Errorf("checkout total = %v, want 200.0", checkout.Total)
	}
}

func TestCancelEndpoint(t *testing.T) {
	router, svc := newTestRouter(t)
	svc.AddRoom(101, "single", 100.0)
	guest, _ := svc.RegisterGuest("John", "john@example.com")

	w, _ := doJSON(t, router, http.MethodPost, "/api/bookings/missing/cancel", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("cancel missing booking: status=%d, want 404", w.Code)
	}

	checkIn, _ := parseDate("2024-01-01")
	checkOut, _ := parseDate("2024-01-03")
	booking, _ := svc.CreateBooking(guest.GuestID, 101, checkIn, checkOut)

	path := "/api/bookings/" + booking.BookingID + "/cancel"
	for i := 0; i < 2; i++ {
		w, _ = doJSON(t, router, http.MethodPost, path, nil)
		if w.Code != http.StatusOK {
			t.Errorf("cancel #%d: status=%d, want 200", i+1, w.Code)
		}
	}
}

func TestInvoiceEndpoint(t *testing.T) {
	router, svc := newTestRouter(t)
	svc.AddRoom(101, "single", 100.0)
	guest, _ := svc.RegisterGuest("John", "john@example.com")
	checkIn, _ := parseDate("2024-01-01")
	checkOut, _ := parseDate("2024-01-03")
	booking, _ := svc.CreateBooking(guest.GuestID, 101, checkIn, checkOut)

	w, env := doJSON(t, router, http.MethodGet, "/api/bookings/"+booking.BookingID+"/invoice", nil)
	if w.Code != http.StatusOK || !env.Success {
		t.Fatalf("invoice: status=%d body=%s", w.Code, w.Body.String())
	}
	var inv struct {
		BaseCost float64 `json:"base_cost"`
		Tax      float64 `json:"tax"`
		Total    float64 `json:"total"`
	}
	if err := json.Unmarshal(env.Data, &inv); err != nil {
		t.Fatalf("decode invoice: %v", err)
	}
	if inv.BaseCost != 200.0 || inv.Tax != 20.0 || inv.Total != 220.0 {
		t.Errorf("invoice = %+v", inv)
	}

	// tax rate override
	_, env = doJSON(t, router, http.MethodGet, "/api/bookings/"+booking.BookingID+"/invoice?tax_rate=0", nil)
	if err := json.Unmarshal(env.Data, &inv); err != nil {
		t.Fatalf("decode invoice: %v", err)
	}
	if inv.Total != 200.0 {
		t.Errorf("zero-tax total = %v, want 200.0", inv.Total)
	}
}

func TestReportEndpoints(t *testing.T) {
	router, svc := newTestRouter(t)
	svc.AddRoom(101, "single", 100.0)
	svc.AddRoom(102, "double", 150.0)
	svc.AddRoom(103, "suite", 250.0)
	guest, _ := svc.RegisterGuest("John", "john@example.com")
	checkIn, _ := parseDate("2024-01-01")
	checkOut, _ := parseDate("2024-01-03")
	booking, _ := svc.CreateBooking(guest.GuestID, 101, checkIn, checkOut)
	svc.CheckIn(booking.BookingID, checkIn)

	w, env := doJSON(t, router, http.MethodGet, "/api/reports/occupancy", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("occupancy: status=%d", w.Code)
	}
	var occ struct {
		TotalRooms     int `json:"total_rooms"`
		OccupiedRooms  int `json:"occupied_rooms"`
		AvailableRooms int `json:"available_rooms"`
	}
	if err := json.Unmarshal(env.Data, &occ); err != nil {
		t.Fatalf("decode occupancy: %v", err)
	}
	if occ.TotalRooms != 3 || occ.OccupiedRooms != 1 || occ.AvailableRooms != 2 {
		t.Errorf("occupancy = %+v", occ)
	}

	svc.CheckOut(booking.BookingID, checkOut)

	_, env = doJSON(t, router, http.MethodGet, "/api/reports/revenue", nil)
	var rev struct {
		TotalRevenue float64 `json:"total_revenue"`
	}
	if err := json.Unmarshal(env.Data, &rev); err != nil {
		t.Fatalf("decode revenue: %v", err)
	}
	if rev.TotalRevenue != 200.0 {
		t.Errorf("revenue = %v, want 200.0", rev.TotalRevenue)
	}
}

func TestAvailableRoomsEndpoint(t *testing.T) {
	router, svc := newTestRouter(t)
	svc.AddRoom(101, "single", 100.0)
	svc.AddRoom(102, "double", 150.0)
	guest, _ := svc.RegisterGuest("John", "john@example.com")
	checkIn, _ := parseDate("2024-01-01")
	checkOut, _ := parseDate("2024-01-05")
	svc.CreateBooking(guest.GuestID, 101, checkIn, checkOut)

	w, env := doJSON(t, router, http.MethodGet, "/api/rooms/available?check_in=2024-01-02&check_out=2024-01-04", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("available: status=%d body=%s", w.Code, w.Body.String())
	}
	var rooms []struct {
		Number int `json:"number"`
	}
	if err := json.Unmarshal(env.Data, &rooms); err != nil {
		t.Fatalf("decode rooms: %v", err)
	}
	if len(rooms) != 1 || rooms[0].Number != 102 {
		t.Errorf("available rooms = %+v", rooms)
	}

	// reversed interval
	w, _ = doJSON(t, router, http.MethodGet, "/api/rooms/available?check_in=2024-01-04&check_out=2024-01-02", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("reversed interval: status=%d, want 400", w.Code)
	}

	// missing dates
	w, _ = doJSON(t, router, http.MethodGet, "/api/rooms/available", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing dates: status=%d, want 400", w.Code)
	}
}

func TestGuestEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	w, env := doJSON(t, router, http.MethodPost, "/api/guests", gin.H{
		"name": "John Doe", "contact": "john@example.com",
	})
	if w.Code != http.StatusCreated || !env.Success {
		t.Fatalf("register guest: status=%d body=%s", w.Code, w.Body.String())
	}
	var guest struct {
		GuestID string `json:"guest_id"`
	}
	if err := json.Unmarshal(env.Data, &guest); err != nil {
		t.Fatalf("decode guest: %v", err)
	}
	if guest.GuestID == "" {
		t.Error("registered guest has no id")
	}

	w, _ = doJSON(t, router, http.MethodGet, "/api/guests/"+guest.GuestID, nil)
	if w.Code != http.StatusOK {
		t.Errorf("get guest: status=%d, want 200", w.Code)
	}

	w, _ = doJSON(t, router, http.MethodGet, "/api/guests/nobody/bookings", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("bookings of unknown guest: status=%d, want 404", w.Code)
	}

	w, _ = doJSON(t, router, http.MethodPost, "/api/guests", gin.H{"name": "No Contact"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing contact: status=%d, want 400", w.Code)
	}
}
