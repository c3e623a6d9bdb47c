package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/srgjo27/movie_ticket/internal/core/domain"
	"github.com/srgjo27/movie_ticket/internal/core/services"
)

// Engine is the set of booking operations the desk drives.
type Engine interface {
	ListMovies(ctx context.Context) ([]domain.MovieSummary, error)
	ListShowtimes(ctx context.Context, movieIndex int) ([]string, error)
	SeatChart(ctx context.Context, movieIndex int) (domain.SeatGrid, error)
	BookTickets(ctx context.Context, req services.BookTicketsRequest) (*domain.Booking, error)
	ListBookings(ctx context.Context, userID string) ([]domain.Booking, error)
	CancelBooking(ctx context.Context, userID string, position int) (*domain.Booking, error)
	AddMovie(ctx context.Context, req services.AddMovieRequest) (int, error)
	ModifyAvailableSeats(ctx context.Context, movieIndex, seats int) error
	MovieStats(ctx context.Context) ([]domain.MovieStats, error)
}

const stopSeat = -1

// errExit ends the outermost menu.
var errExit = errors.New("exit")

// Desk is the interactive front counter: it reads menu choices, runs one
// engine operation per choice and prints the result.
type Desk struct {
	engine   Engine
	auth     *AdminAuthenticator
	validate *validator.Validate
	logger   *slog.Logger
	in       *input
	out      io.Writer
}

func NewDesk(engine Engine, auth *AdminAuthenticator, logger *slog.Logger, r io.Reader, w io.Writer) *Desk {
	return &Desk{
		engine:   engine,
		auth:     auth,
		validate: newValidator(),
		logger:   logger,
		in:       newInput(r),
		out:      w,
	}
}

// Run serves the login menu until the user exits or input ends.
func (d *Desk) Run(ctx context.Context) error {
	err := d.menu(ctx, "MOVIE TICKET BOOKING SYSTEM", []command{
		{"Login as Admin", d.adminLogin},
		{"Login as User", d.userLogin},
		{"Exit", func(context.Context) error {
			fmt.Fprintln(d.out, "Exiting...")
			return errExit
		}},
	})
	if errors.Is(err, errExit) || errors.Is(err, io.EOF) {
		return nil
	}

	return err
}

type command struct {
	label string
	run   func(ctx context.Context) error
}

// menu loops over one menu. A command ends the loop by returning errLogout
// (handled here) or errExit/io.EOF (passed up).
func (d *Desk) menu(ctx context.Context, title string, commands []command) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		banner(d.out, title)
		for i, c := range commands {
			fmt.Fprintf(d.out, "%d. %s\n", i+1, c.label)
		}
		fmt.Fprint(d.out, "Enter choice: ")

		choice, err := d.in.integer()
		if err != nil {
			if d.fatal(err) {
				return err
			}
			d.in.discardLine()
			fmt.Fprintln(d.out, "Invalid choice, try again.")
			continue
		}

		if choice < 1 || choice > len(commands) {
			fmt.Fprintln(d.out, "Invalid choice, try again.")
			continue
		}

		err = commands[choice-1].run(ctx)
		switch {
		case errors.Is(err, errLogout):
			return nil
		case err == nil:
		case d.fatal(err):
			return err
		default:
			d.in.discardLine()
			fmt.Fprintln(d.out, describe(err))
		}
	}
}

var errLogout = errors.New("logout")

func (d *Desk) logout(context.Context) error {
	fmt.Fprintln(d.out, "Logging out...")
	return errLogout
}

// fatal reports errors that end the session rather than the command.
func (d *Desk) fatal(err error) bool {
	var bad *badInputError
	if errors.As(err, &bad) {
		return false
	}

	var broken *readError
	if errors.As(err, &broken) {
		return true
	}

	return errors.Is(err, io.EOF) || errors.Is(err, errExit) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func (d *Desk) ask(prompt string) (string, error) {
	fmt.Fprint(d.out, prompt)
	return d.in.token()
}

func (d *Desk) askInt(prompt string) (int, error) {
	fmt.Fprint(d.out, prompt)
	return d.in.integer()
}

func (d *Desk) adminLogin(ctx context.Context) error {
	username, err := d.ask("Enter Admin Username: ")
	if err != nil {
		return err
	}
	password, err := d.ask("Enter Admin Password: ")
	if err != nil {
		return err
	}

	if !d.auth.Verify(username, password) {
		d.logger.Warn("admin login rejected", slog.String("username", username))
		fmt.Fprintln(d.out, "Invalid credentials.")
		return nil
	}

	d.logger.Info("admin logged in", slog.String("username", username))

	return d.menu(ctx, "ADMIN MENU", []command{
		{"Add a New Movie", d.addMovie},
		{"Modify Movie Details", d.modifyMovie},
		{"Movie Status (Revenue)", d.movieStats},
		{"Logout", d.logout},
	})
}

func (d *Desk) userLogin(ctx context.Context) error {
	username, err := d.ask("Enter User Username: ")
	if err != nil {
		return err
	}
	if _, err := d.ask("Enter User Password: "); err != nil {
		return err
	}

	d.logger.Info("user logged in", slog.String("username", username))

	s := &session{Desk: d, user: username}

	return d.menu(ctx, "USER MENU", []command{
		{"View Available Movies", s.viewMovies},
		{"Book Tickets", s.bookTickets},
		{"View Bookings", s.viewBookings},
		{"Cancel Booking", s.cancelBooking},
		{"Logout", d.logout},
	})
}
