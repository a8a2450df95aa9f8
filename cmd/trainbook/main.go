// Command trainbook is a terminal front end for the reservation core. Each
// command maps directly onto one service call; the session token returned
// by login is held client-side and passed back on every authenticated call.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/iliyamo/train-ticket-reservation/internal/config"
	"github.com/iliyamo/train-ticket-reservation/internal/model"
	"github.com/iliyamo/train-ticket-reservation/internal/queue"
	"github.com/iliyamo/train-ticket-reservation/internal/repository"
	"github.com/iliyamo/train-ticket-reservation/internal/service"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	logger.Info("starting trainbook", "env", cfg.Env)

	trains := repository.NewTrainRepo()
	orders := repository.NewOrderRepo()
	users := repository.NewUserRepo()

	var events queue.Publisher = queue.NopPublisher{}
	if cfg.AMQPURL != "" {
		events = queue.NewAMQPPublisher(cfg.AMQPURL, logger)
	}

	auth := service.NewAuthService(users, cfg.JWTSecret, cfg.AccessTTLMin, cfg.BcryptCost, config.NewRedisClient(cfg), logger)
	booking := service.NewBookingService(trains, orders, events, logger)

	if err := seed(trains, auth); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}

	repl(booking, auth)
}

// seed loads the demonstration timetable and two accounts (admin/admin123,
// user1/123456).
func seed(trains *repository.TrainRepo, auth *service.AuthService) error {
	g101, err := model.NewTrain("G101", "High-Speed", 100, model.Route{
		{Station: "Beijing", Arrival: "08:00", Departure: "08:00", FareCents: 0, DistanceKM: 0},
		{Station: "Jinan", Arrival: "09:30", Departure: "09:35", FareCents: 15000, DistanceKM: 400},
		{Station: "Nanjing", Arrival: "11:30", Departure: "11:35", FareCents: 35000, DistanceKM: 1000},
		{Station: "Shanghai", Arrival: "13:00", Departure: "13:00", FareCents: 55300, DistanceKM: 1318},
	})
	if err != nil {
		return err
	}
	k505, err := model.NewTrain("K505", "Normal", 200, model.Route{
		{Station: "Beijing", Arrival: "07:00", Departure: "07:00", FareCents: 0, DistanceKM: 0},
		{Station: "Shijiazhuang", Arrival: "10:00", Departure: "10:15", FareCents: 5000, DistanceKM: 300},
		{Station: "Zhengzhou", Arrival: "13:00", Departure: "13:20", FareCents: 12000, DistanceKM: 700},
		{Station: "Xi'an", Arrival: "18:00", Departure: "18:00", FareCents: 20000, DistanceKM: 1200},
	})
	if err != nil {
		return err
	}
	trains.Put(g101)
	trains.Put(k505)

	if err := auth.Register("admin", "admin123", "System Admin", "000000", model.RoleAdmin); err != nil {
		return err
	}
	return auth.Register("user1", "123456", "John Doe", "123456789012345678", model.RolePassenger)
}

func repl(booking *service.BookingService, auth *service.AuthService) {
	ctx := context.Background()
	var token string

	fmt.Println("trainbook ready; type 'help' for commands")
	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !sc.Scan() {
			return
		}
		args := strings.Fields(sc.Text())
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "help":
			usage()
		case "quit", "exit":
			return

		case "register":
			if len(args) < 5 {
				fmt.Println("usage: register <username> <password> <name> <idcard>")
				continue
			}
			if err := auth.Register(args[1], args[2], args[3], args[4], model.RolePassenger); err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Println("registered", args[1])

		case "login":
			if len(args) < 3 {
				fmt.Println("usage: login <username> <password>")
				continue
			}
			t, err := auth.Login(ctx, args[1], args[2])
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			token = t
			fmt.Println("logged in as", args[1])

		case "logout":
			auth.Logout(ctx, token)
			token = ""
			fmt.Println("logged out")

		case "trains":
			for _, t := range booking.Trains() {
				printTrain(t)
			}

		case "search":
			if len(args) < 4 {
				fmt.Println("usage: search <start> <end> <date>")
				continue
			}
			found, err := booking.Search(args[1], args[2], args[3], 1)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			if len(found) == 0 {
				fmt.Println("no trains available")
				continue
			}
			for _, t := range found {
				fare, _ := booking.Fare(t.ID, args[1], args[2])
				fmt.Printf("%s (%s) dep %s arr %s fare %s\n",
					t.ID, t.Type, t.DepartureAt(args[1]), t.ArrivalAt(args[2]), cents(fare))
			}

		case "price":
			if len(args) < 4 {
				fmt.Println("usage: price <train> <start> <end>")
				continue
			}
			fare, err := booking.Fare(args[1], args[2], args[3])
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Println(cents(fare))

		case "book":
			if len(args) < 5 {
				fmt.Println("usage: book <train> <start> <end> <date> [count]")
				continue
			}
			count := 1
			if len(args) > 5 {
				n, err := strconv.Atoi(args[5])
				if err != nil {
					fmt.Println("error: bad count")
					continue
				}
				count = n
			}
			id, err := auth.Resolve(ctx, token)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			order, err := booking.Book(ctx, id, args[1], args[2], args[3], args[4], count)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Printf("booked: order %s, %d ticket(s), total %s\n", order.ID, order.Tickets, cents(order.FareCents))

		case "refund":
			if len(args) < 2 {
				fmt.Println("usage: refund <orderid>")
				continue
			}
			id, err := auth.Resolve(ctx, token)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			order, err := booking.Refund(ctx, id, args[1])
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Printf("refunded: order %s, %s returned\n", order.ID, cents(order.FareCents))

		case "orders":
			id, err := auth.Resolve(ctx, token)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			list, err := booking.Orders(id)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			if len(list) == 0 {
				fmt.Println("no orders")
				continue
			}
			for _, o := range list {
				fmt.Printf("%s %s %s->%s %s %s x%d %s [%s]\n",
					o.ID, o.TrainID, o.Start, o.End, o.Date, o.Departure, o.Tickets, cents(o.FareCents), o.Status)
			}

		default:
			fmt.Println("unknown command; type 'help'")
		}
	}
}

func printTrain(t *model.Train) {
	stops := make([]string, 0, len(t.Route()))
	for _, s := range t.Route() {
		stops = append(stops, s.Station)
	}
	fmt.Printf("%s (%s, %d seats): %s\n", t.ID, t.Type, t.Seats, strings.Join(stops, " -> "))
}

func cents(c int64) string {
	return fmt.Sprintf("%d.%02d", c/100, c%100)
}

func usage() {
	fmt.Print(`commands:
  register <username> <password> <name> <idcard>
  login <username> <password>
  logout
  trains
  search <start> <end> <date>          (date: YYYY-MM-DD)
  price <train> <start> <end>
  book <train> <start> <end> <date> [count]
  refund <orderid>
  orders
  quit
`)
}
