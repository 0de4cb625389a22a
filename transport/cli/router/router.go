// Package router maps a menu choice to an operation for the current session.
package router

import (
	"context"
	"errors"
	"hotel/internal/handlers/booking"
	"hotel/internal/handlers/hotel"
	"hotel/internal/handlers/repair"
	"hotel/internal/handlers/room"
	"hotel/internal/handlers/user"
	"hotel/internal/session"
	"hotel/shared/constant"
	"hotel/transport/cli/response"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// Outcome tells the shell what a handled choice did to the session.
type Outcome int

const (
	OutcomeHandled Outcome = iota
	OutcomeUnrecognized
	OutcomeLoggedIn
	OutcomeLoggedOut
	OutcomeExit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHandled:
		return "handled"
	case OutcomeUnrecognized:
		return "unrecognized"
	case OutcomeLoggedIn:
		return "logged in"
	case OutcomeLoggedOut:
		return "logged out"
	case OutcomeExit:
		return "exit"
	default:
		return "unknown"
	}
}

type DomainHandlers struct {
	User    user.Handler
	Hotel   hotel.Handler
	Room    room.Handler
	Booking booking.Handler
	Repair  repair.Handler
}

type operation struct {
	label string
	run   func(ctx context.Context, sess session.Session) error
}

type Router struct {
	DomainHandlers DomainHandlers
	response       response.Writer
	customer       map[int]operation
	manager        map[int]operation
}

func New(domainHandlers DomainHandlers, res response.Writer) *Router {
	r := &Router{
		DomainHandlers: domainHandlers,
		response:       res,
	}

	r.setupOperations()

	return r
}

func (r *Router) setupOperations() {
	h := &r.DomainHandlers

	r.customer = map[int]operation{
		constant.ChoiceViewHotels: {"View Hotels within 30 units", func(ctx context.Context, _ session.Session) error {
			return h.Hotel.ViewHotels(ctx)
		}},
		constant.ChoiceViewRooms: {"View Rooms", func(ctx context.Context, _ session.Session) error {
			return h.Room.ViewRooms(ctx)
		}},
		constant.ChoiceBookRoom:           {"Book a Room", h.Booking.BookRoom},
		constant.ChoiceViewRecentBookings: {"View recent booking history", h.Booking.ViewRecentBookings},
	}

	r.manager = map[int]operation{
		constant.ChoiceUpdateRoomInfo:      {"Update Room Information", h.Room.UpdateRoomInfo},
		constant.ChoiceViewRecentUpdates:   {"View 5 recent Room Updates Info", h.Room.ViewRecentUpdates},
		constant.ChoiceViewBookingHistory:  {"View booking history of the hotel", h.Booking.ViewBookingHistory},
		constant.ChoiceViewRegularCustomer: {"View 5 regular Customers", h.Booking.ViewRegularCustomers},
		constant.ChoicePlaceRepairRequest:  {"Place room repair Request to a company", h.Repair.PlaceRepairRequest},
		constant.ChoiceViewRepairHistory:   {"View room repair Requests history", h.Repair.ViewRepairHistory},
	}

	for choice, op := range r.customer {
		r.manager[choice] = op
	}
}

// Handle runs one menu choice and returns the session the next choice runs under.
// A failed operation leaves the session untouched; running out of input ends the loop.
func (r *Router) Handle(ctx context.Context, sess session.Session, choice int) (session.Session, Outcome) {
	if sess.State() == session.Anonymous {
		return r.handleAnonymous(ctx, sess, choice)
	}

	if choice == constant.ChoiceLogOut {
		log.Debug().Str("session_id", sess.ID).Int("user_id", sess.UserID).Msg("user logged out")

		return session.Session{}, OutcomeLoggedOut
	}

	op, ok := r.operations(sess)[choice]
	if !ok {
		return r.unrecognized(sess)
	}

	if err := op.run(ctx, sess); err != nil {
		return sess, r.inputEnded(err)
	}

	return sess, OutcomeHandled
}

func (r *Router) handleAnonymous(ctx context.Context, sess session.Session, choice int) (session.Session, Outcome) {
	switch choice {
	case constant.ChoiceCreateUser:
		if err := r.DomainHandlers.User.CreateUser(ctx); err != nil {
			return sess, r.inputEnded(err)
		}

		return sess, OutcomeHandled
	case constant.ChoiceLogIn:
		authenticated, err := r.DomainHandlers.User.LogIn(ctx)
		if err != nil {
			return sess, r.inputEnded(err)
		}

		if !authenticated.Authenticated() {
			return sess, OutcomeHandled
		}

		return authenticated, OutcomeLoggedIn
	case constant.ChoiceExit:
		return sess, OutcomeExit
	default:
		return r.unrecognized(sess)
	}
}

func (r *Router) operations(sess session.Session) map[int]operation {
	if sess.State() == session.AuthenticatedManagerOrAdmin {
		return r.manager
	}

	return r.customer
}

func (r *Router) unrecognized(sess session.Session) (session.Session, Outcome) {
	r.response.WithMessage("Unrecognized choice!")

	return sess, OutcomeUnrecognized
}

func (r *Router) inputEnded(err error) Outcome {
	if !errors.Is(err, io.EOF) {
		log.Error().Err(err).Msg("failed to read input")
	}

	return OutcomeExit
}

// Menu is the list of choices offered to the session.
func (r *Router) Menu(sess session.Session) string {
	var sb strings.Builder

	sb.WriteString("MAIN MENU\n")
	sb.WriteString("---------\n")

	if sess.State() == session.Anonymous {
		sb.WriteString("1. Create user\n")
		sb.WriteString("2. Log in\n")
		sb.WriteString("9. < EXIT\n")

		return sb.String()
	}

	ops := r.operations(sess)
	for choice := constant.ChoiceViewHotels; choice <= constant.ChoiceViewRepairHistory; choice++ {
		if op, ok := ops[choice]; ok {
			sb.WriteString(strconv.Itoa(choice) + ". " + op.label + "\n")
		}
	}

	sb.WriteString(".........................\n")
	sb.WriteString("20. Log out\n")

	return sb.String()
}
