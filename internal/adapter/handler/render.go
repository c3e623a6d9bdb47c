package handler

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/movie_ticket/internal/core/domain"
)

const rule = "------------------------------"

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func banner(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n|%s|\n%s\n", rule, center(title, len(rule)-2), rule)
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}

func seatList(seats []domain.Seat) string {
	parts := make([]string, 0, len(seats))
	for _, s := range seats {
		parts = append(parts, s.String())
	}

	return strings.Join(parts, " ")
}

func renderMovies(w io.Writer, movies []domain.MovieSummary) {
	banner(w, "Available Movies")
	for _, m := range movies {
		fmt.Fprintf(w, "%d. %s | Price: %s (Seats Available: %d)\n", m.Index+1, m.Name, money(m.Price), m.AvailableSeats)
	}
	fmt.Fprintln(w, rule)
}

func renderShowtimes(w io.Writer, movie string, showtimes []string) {
	fmt.Fprintf(w, "\n%s\n  Showtimes for %s\n%s\n", rule, movie, rule)
	for i, st := range showtimes {
		fmt.Fprintf(w, "%d. %s\n", i+1, st)
	}
	fmt.Fprintln(w, rule)
}

func renderSeatChart(w io.Writer, grid domain.SeatGrid) {
	banner(w, "Seat Chart")
	for _, row := range grid {
		var b strings.Builder
		for _, free := range row {
			if free {
				b.WriteString("[ ]")
			} else {
				b.WriteString("[X]")
			}
		}
		fmt.Fprintln(w, b.String())
	}
	fmt.Fprintln(w, rule)
}

func renderConfirmation(w io.Writer, movie domain.MovieSummary, showtime string, b *domain.Booking) {
	banner(w, "Booking Confirmed!")
	fmt.Fprintf(w, "Movie: %s\n", movie.Name)
	fmt.Fprintf(w, "Showtime: %s\n", showtime)
	fmt.Fprintf(w, "Seats Booked: %s\n", seatList(b.Seats))
	fmt.Fprintf(w, "Total Price: %s\n", money(b.TotalPrice))
	fmt.Fprintf(w, "Remaining Seats: %d\n", movie.AvailableSeats)
	fmt.Fprintln(w, rule)
}

// bookingLine describes one ledger entry; catalog supplies the movie names
// and showtimes by index.
type bookingLine struct {
	Movie    string
	Showtime string
	Booking  domain.Booking
}

func renderBookings(w io.Writer, lines []bookingLine) {
	if len(lines) == 0 {
		banner(w, "No bookings found.")
		return
	}

	banner(w, "Your Bookings")
	for i, l := range lines {
		fmt.Fprintf(w, "%d. Movie: %s | Showtime: %s | Seats: %s | Total Price: %s\n",
			i+1, l.Movie, l.Showtime, seatList(l.Booking.Seats), money(l.Booking.TotalPrice))
	}
	fmt.Fprintln(w, rule)
}

func renderStats(w io.Writer, stats []domain.MovieStats) {
	banner(w, "Movie Status (Revenue)")
	for _, s := range stats {
		fmt.Fprintf(w, "Movie: %s | Tickets Sold: %d | Total Revenue: %s\n", s.Name, s.TicketsSold, money(s.Revenue))
	}
	fmt.Fprintln(w, rule)
}

// describe turns an engine or input error into the line shown to the user.
func describe(err error) string {
	var bad *badInputError
	var invalid validator.ValidationErrors

	switch {
	case errors.As(err, &bad):
		return "Invalid input: " + bad.Error() + "."
	case errors.As(err, &invalid):
		return "Invalid input: " + describeValidation(invalid)
	case errors.Is(err, domain.ErrSeatUnavailable):
		return "One or more selected seats are already booked."
	case errors.Is(err, domain.ErrSeatOutOfRange):
		return "One or more selected seats are not on the seat chart."
	case errors.Is(err, domain.ErrIndexOutOfRange):
		return "Invalid movie or showtime number."
	case errors.Is(err, domain.ErrInvalidBookingIndex):
		return "Invalid booking number."
	default:
		return "Something went wrong: " + err.Error()
	}
}

func describeValidation(errs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "min":
			msgs = append(msgs, fe.Field()+" needs at least "+fe.Param())
		case "gt":
			msgs = append(msgs, fe.Field()+" must be greater than "+fe.Param())
		case "gte":
			msgs = append(msgs, fe.Field()+" must not be below "+fe.Param())
		default:
			msgs = append(msgs, fe.Field()+" is invalid")
		}
	}

	return strings.Join(msgs, "; ") + "."
}
