package handler_test

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/srgjo27/movie_ticket/internal/adapter/handler"
	"github.com/srgjo27/movie_ticket/internal/adapter/repository/memory"
	"github.com/srgjo27/movie_ticket/internal/core/services"
	"github.com/srgjo27/movie_ticket/internal/platform/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newEngine(t *testing.T) *services.BookingService {
	t.Helper()

	svc := services.NewBookingService(
		memory.NewMovieRepository(),
		memory.NewBookingRepository(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		services.Config{},
	)
	require.NoError(t, seed.Load(context.Background(), svc))

	return svc
}

func runDesk(t *testing.T, svc *services.BookingService, script ...string) string {
	t.Helper()

	auth, err := handler.NewAdminAuthenticator("admin", "admin", bcrypt.MinCost)
	require.NoError(t, err)

	var out bytes.Buffer
	desk := handler.NewDesk(svc, auth, slog.New(slog.NewTextHandler(io.Discard, nil)), strings.NewReader(strings.Join(script, "\n")+"\n"), &out)

	require.NoError(t, desk.Run(context.Background()))

	return out.String()
}

func TestDesk_UserBooksAndCancels(t *testing.T) {
	svc := newEngine(t)

	out := runDesk(t, svc,
		"2", "alice", "secret",
		"2", "1", "1", "1 1", "1 2", "-1",
		"3",
		"4", "1",
		"5",
		"3",
	)

	assert.Contains(t, out, "Showtimes for Avengers: Endgame")
	assert.Contains(t, out, "Seats Booked: (1, 1) (1, 2)")
	assert.Contains(t, out, "Total Price: $25.00")
	assert.Contains(t, out, "Remaining Seats: 48")
	assert.Contains(t, out, "1. Movie: Avengers: Endgame | Showtime: 10:00 AM | Seats: (1, 1) (1, 2) | Total Price: $25.00")
	assert.Contains(t, out, "Booking cancelled successfully.")
	assert.Contains(t, out, "Logging out...")
	assert.Contains(t, out, "Exiting...")

	movies, err := svc.ListMovies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 50, movies[0].AvailableSeats)

	bookings, err := svc.ListBookings(context.Background(), "alice")
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestDesk_SeatChartShowsBookedSeats(t *testing.T) {
	svc := newEngine(t)

	out := runDesk(t, svc,
		"2", "alice", "secret",
		"2", "3", "2", "1 3", "-1",
		"2", "3", "4", "-1",
		"5", "3",
	)

	assert.Contains(t, out, "[ ][ ][X][ ][ ][ ][ ][ ][ ][ ]")
	assert.Contains(t, out, "No seats selected.")
}

func TestDesk_DuplicateSeatIsRefused(t *testing.T) {
	svc := newEngine(t)

	out := runDesk(t, svc,
		"2", "bob", "pw",
		"2", "1", "1", "1 1", "1 1", "-1",
		"5", "3",
	)

	assert.Contains(t, out, "One or more selected seats are already booked.")

	chart, err := svc.SeatChart(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 50, chart.Available())
}

func TestDesk_InvalidMovieNumber(t *testing.T) {
	svc := newEngine(t)

	out := runDesk(t, svc,
		"2", "alice", "pw",
		"2", "7",
		"5", "3",
	)

	assert.Contains(t, out, "Invalid movie or showtime number.")
}

func TestDesk_CancelWithoutBookings(t *testing.T) {
	out := runDesk(t, newEngine(t),
		"2", "carol", "pw",
		"4",
		"5", "3",
	)

	assert.Contains(t, out, "No bookings found.")
	assert.NotContains(t, out, "Enter the booking number to cancel")
}

func TestDesk_AdminManagesCatalog(t *testing.T) {
	svc := newEngine(t)

	out := runDesk(t, svc,
		"1", "admin", "admin",
		"1", "Dune: Part Two", "60", "14.00", "2", "10:00 AM", "08:30 PM",
		"2", "1", "999",
		"3",
		"4",
		"3",
	)

	assert.Contains(t, out, "Movie added successfully.")
	assert.Contains(t, out, "Movie modified. Available seats updated.")
	assert.Contains(t, out, "Movie: Dune: Part Two | Tickets Sold: 0 | Total Revenue: $0.00")

	movies, err := svc.ListMovies(context.Background())
	require.NoError(t, err)
	require.Len(t, movies, 4)
	assert.Equal(t, 999, movies[0].AvailableSeats)
	assert.Equal(t, "Dune: Part Two", movies[3].Name)
	assert.Equal(t, 60, movies[3].AvailableSeats)

	showtimes, err := svc.ListShowtimes(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00 AM", "08:30 PM"}, showtimes)
}

func TestDesk_AdminInputIsValidated(t *testing.T) {
	svc := newEngine(t)

	out := runDesk(t, svc,
		"1", "admin", "admin",
		"1", "Dune: Part Two", "0", "14.00", "1", "10:00 AM",
		"4", "3",
	)

	assert.Contains(t, out, "Invalid input: Seats must be greater than 0.")

	movies, err := svc.ListMovies(context.Background())
	require.NoError(t, err)
	assert.Len(t, movies, 3)
}

func TestDesk_AdminRejectsWrongPassword(t *testing.T) {
	out := runDesk(t, newEngine(t),
		"1", "admin", "letmein",
		"3",
	)

	assert.Contains(t, out, "Invalid credentials.")
	assert.NotContains(t, out, "ADMIN MENU")
}

func TestDesk_InvalidChoices(t *testing.T) {
	out := runDesk(t, newEngine(t), "9", "abc", "3")

	assert.Equal(t, 2, strings.Count(out, "Invalid choice, try again."))
}

func TestDesk_EndOfInputEndsSession(t *testing.T) {
	out := runDesk(t, newEngine(t), "2", "alice", "pw", "1")

	assert.Contains(t, out, "Available Movies")
	assert.Contains(t, out, "1. Avengers: Endgame | Price: $12.50 (Seats Available: 50)")
}

func TestDesk_BadSeatEntryIsRetyped(t *testing.T) {
	svc := newEngine(t)

	out := runDesk(t, svc,
		"2", "alice", "pw",
		"2", "2", "1", "1 x", "2 2", "-1",
		"5", "3",
	)

	assert.Contains(t, out, `Invalid input: "x" is not a whole number. Enter that seat again.`)
	assert.Contains(t, out, "Seats Booked: (2, 2)")
	assert.NotContains(t, out, "Invalid choice, try again.")

	bookings, err := svc.ListBookings(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, 1, bookings[0].MovieIndex)
}

func TestDesk_UnreadableInputEndsSession(t *testing.T) {
	auth, err := handler.NewAdminAuthenticator("admin", "admin", bcrypt.MinCost)
	require.NoError(t, err)

	script := strings.Repeat("1", 70*1024) + "\n3\n"

	var out bytes.Buffer
	desk := handler.NewDesk(newEngine(t), auth, slog.New(slog.NewTextHandler(io.Discard, nil)), strings.NewReader(script), &out)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = desk.Run(ctx)

	assert.ErrorIs(t, err, bufio.ErrTooLong)
	assert.NoError(t, ctx.Err())
	assert.NotContains(t, out.String(), "Invalid choice, try again.")
}
