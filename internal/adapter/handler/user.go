package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/srgjo27/movie_ticket/internal/core/domain"
	"github.com/srgjo27/movie_ticket/internal/core/services"
)

// session is a logged-in customer at the desk.
type session struct {
	*Desk
	user string
}

func (s *session) viewMovies(ctx context.Context) error {
	movies, err := s.engine.ListMovies(ctx)
	if err != nil {
		return err
	}
	renderMovies(s.out, movies)

	return nil
}

// bookTickets walks the customer from movie to showtime to seats. Numbers
// typed by the customer are 1-based; the engine is 0-based.
func (s *session) bookTickets(ctx context.Context) error {
	movies, err := s.engine.ListMovies(ctx)
	if err != nil {
		return err
	}
	renderMovies(s.out, movies)

	number, err := s.askInt("Enter movie index to book: ")
	if err != nil {
		return err
	}
	movieIndex := number - 1

	showtimes, err := s.engine.ListShowtimes(ctx, movieIndex)
	if err != nil {
		return err
	}
	renderShowtimes(s.out, movies[movieIndex].Name, showtimes)

	number, err = s.askInt("Enter showtime index: ")
	if err != nil {
		return err
	}
	showtimeIndex := number - 1
	if showtimeIndex < 0 || showtimeIndex >= len(showtimes) {
		return fmt.Errorf("showtime %d: %w", number, domain.ErrIndexOutOfRange)
	}

	chart, err := s.engine.SeatChart(ctx, movieIndex)
	if err != nil {
		return err
	}
	renderSeatChart(s.out, chart)

	seats, err := s.readSeats()
	if err != nil {
		return err
	}
	if len(seats) == 0 {
		fmt.Fprintln(s.out, "No seats selected.")
		return nil
	}

	booking, err := s.engine.BookTickets(ctx, services.BookTicketsRequest{
		UserID:        s.user,
		MovieIndex:    movieIndex,
		ShowtimeIndex: showtimeIndex,
		Seats:         seats,
	})
	if err != nil {
		return err
	}

	movies, err = s.engine.ListMovies(ctx)
	if err != nil {
		return err
	}
	renderConfirmation(s.out, movies[movieIndex], showtimes[showtimeIndex], booking)

	return nil
}

func (s *session) readSeats() ([]domain.Seat, error) {
	fmt.Fprintln(s.out, "Enter seats to book (row, column) separated by space (-1 to stop):")

	var seats []domain.Seat
	for {
		row, err := s.in.integer()
		if err == nil && row == stopSeat {
			s.in.discardLine()
			return seats, nil
		}

		var col int
		if err == nil {
			col, err = s.in.integer()
		}

		var bad *badInputError
		switch {
		case errors.As(err, &bad):
			s.in.discardLine()
			fmt.Fprintln(s.out, describe(err)+" Enter that seat again.")
			continue
		case err != nil:
			return nil, err
		}

		seats = append(seats, domain.Seat{Row: row - 1, Col: col - 1})
	}
}

func (s *session) ledger(ctx context.Context) ([]bookingLine, error) {
	bookings, err := s.engine.ListBookings(ctx, s.user)
	if err != nil || len(bookings) == 0 {
		return nil, err
	}

	movies, err := s.engine.ListMovies(ctx)
	if err != nil {
		return nil, err
	}

	lines := make([]bookingLine, 0, len(bookings))
	for _, b := range bookings {
		showtimes, err := s.engine.ListShowtimes(ctx, b.MovieIndex)
		if err != nil {
			return nil, err
		}
		lines = append(lines, bookingLine{
			Movie:    movies[b.MovieIndex].Name,
			Showtime: showtimes[b.ShowtimeIndex],
			Booking:  b,
		})
	}

	return lines, nil
}

func (s *session) viewBookings(ctx context.Context) error {
	lines, err := s.ledger(ctx)
	if err != nil {
		return err
	}
	renderBookings(s.out, lines)

	return nil
}

func (s *session) cancelBooking(ctx context.Context) error {
	lines, err := s.ledger(ctx)
	if err != nil {
		return err
	}
	renderBookings(s.out, lines)
	if len(lines) == 0 {
		return nil
	}

	position, err := s.askInt("Enter the booking number to cancel: ")
	if err != nil {
		return err
	}

	if _, err := s.engine.CancelBooking(ctx, s.user, position); err != nil {
		return err
	}

	fmt.Fprintln(s.out, "Booking cancelled successfully.")

	return nil
}
