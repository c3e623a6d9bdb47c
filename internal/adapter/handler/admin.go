package handler

import (
	"context"
	"fmt"
)

func (d *Desk) addMovie(ctx context.Context) error {
	banner(d.out, "Add a New Movie")

	var form addMovieForm
	var err error

	fmt.Fprint(d.out, "Enter movie name: ")
	if form.Name, err = d.in.line(); err != nil {
		return err
	}
	if form.Seats, err = d.askInt("Enter number of seats: "); err != nil {
		return err
	}
	fmt.Fprint(d.out, "Enter price per ticket: ")
	if form.Price, err = d.in.money(); err != nil {
		return err
	}

	count, err := d.askInt("Enter number of showtimes: ")
	if err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		fmt.Fprintf(d.out, "Enter showtime %d: ", i+1)
		showtime, err := d.in.line()
		if err != nil {
			return err
		}
		form.Showtimes = append(form.Showtimes, showtime)
	}

	if err := d.validate.Struct(form); err != nil {
		return err
	}

	if _, err := d.engine.AddMovie(ctx, form.request()); err != nil {
		return err
	}

	fmt.Fprintln(d.out, "Movie added successfully.")

	return nil
}

func (d *Desk) modifyMovie(ctx context.Context) error {
	movies, err := d.engine.ListMovies(ctx)
	if err != nil {
		return err
	}
	renderMovies(d.out, movies)

	number, err := d.askInt("Enter movie index to modify: ")
	if err != nil {
		return err
	}
	seats, err := d.askInt("Enter new number of available seats: ")
	if err != nil {
		return err
	}

	if err := d.engine.ModifyAvailableSeats(ctx, number-1, seats); err != nil {
		return err
	}

	fmt.Fprintln(d.out, "Movie modified. Available seats updated.")

	return nil
}

func (d *Desk) movieStats(ctx context.Context) error {
	stats, err := d.engine.MovieStats(ctx)
	if err != nil {
		return err
	}
	renderStats(d.out, stats)

	return nil
}
