package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/eprometna/client-go/internal/client/app"
)

const usage = `usage: eprometna [-config path] <command> [args]

commands:
  login <email>    authenticate and enroll this device if needed
  logout           clear the local session and notify the server
  whoami           show the logged-in user
  refresh          re-fetch the user profile from the server
  vehicles         list the user's vehicles
  vehicle <uuid>   show a vehicle's full details
  qr <uuid>        issue a temporary vehicle data token
  ping             check backend reachability
`

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := app.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}
	defer application.Close()

	if err := run(context.Background(), application, args); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, application *app.Application, args []string) error {
	switch cmd, rest := args[0], args[1:]; cmd {
	case "login":
		return login(ctx, application, rest)
	case "logout":
		application.Session.Logout(ctx)
		fmt.Println("logged out")
		return nil
	case "whoami":
		return whoami(ctx, application)
	case "refresh":
		application.Session.RefreshUserData(ctx)
		return whoami(ctx, application)
	case "vehicles":
		return listVehicles(ctx, application)
	case "vehicle":
		if len(rest) != 1 {
			return fmt.Errorf("usage: eprometna vehicle <uuid>")
		}
		return showVehicle(ctx, application, rest[0])
	case "qr":
		if len(rest) != 1 {
			return fmt.Errorf("usage: eprometna qr <uuid>")
		}
		return issueTempData(ctx, application, rest[0])
	case "ping":
		if err := application.Ping(ctx); err != nil {
			return err
		}
		fmt.Printf("backend reachable at %s\n", application.BaseURL())
		return nil
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func login(ctx context.Context, application *app.Application, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: eprometna login <email>")
	}

	password, err := promptPassword()
	if err != nil {
		return err
	}

	if err := application.Session.Login(ctx, args[0], password, true); err != nil {
		return err
	}

	state := application.Session.Snapshot()
	if state.User != nil {
		fmt.Printf("logged in as %s (%s)\n", state.User.DisplayName(), state.User.Role)
	} else {
		fmt.Println("logged in")
	}
	return nil
}

func whoami(ctx context.Context, application *app.Application) error {
	if !application.Session.IsAuthenticated(ctx) {
		return fmt.Errorf("not logged in")
	}

	state := application.Session.Snapshot()
	if state.User == nil {
		return fmt.Errorf("no cached user; run eprometna refresh after logging in")
	}

	u := state.User
	fmt.Printf("%s\n", u.DisplayName())
	fmt.Printf("  email:     %s\n", u.Email)
	fmt.Printf("  role:      %s\n", u.Role)
	if u.OIB != "" {
		fmt.Printf("  oib:       %s\n", u.OIB)
	}
	if u.Residence != "" {
		fmt.Printf("  residence: %s\n", u.Residence)
	}
	return nil
}

func listVehicles(ctx context.Context, application *app.Application) error {
	vehicles, err := application.VehicleService.GetMyVehicles(ctx)
	if err != nil {
		return err
	}

	if len(vehicles) == 0 {
		fmt.Println("no vehicles registered")
		return nil
	}

	for _, v := range vehicles {
		fmt.Printf("%s  %s (%d)  %s\n", v.Registration, v.Model, v.ProductionYear, v.UUID)
	}
	return nil
}

func showVehicle(ctx context.Context, application *app.Application, id string) error {
	details, err := application.VehicleService.GetVehicleDetails(ctx, id)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s (%d)\n", details.VehicleType, details.Model, details.ProductionYear)
	fmt.Printf("  registration:  %s\n", details.Registration)
	if details.ChassisNumber != "" {
		fmt.Printf("  chassis:       %s\n", details.ChassisNumber)
	}
	if details.FirstRegistered != "" {
		fmt.Printf("  first reg.:    %s\n", details.FirstRegistered)
	}
	if details.TechnicalValidTo != "" {
		fmt.Printf("  tech. valid:   %s\n", details.TechnicalValidTo)
	}
	return nil
}

func issueTempData(ctx context.Context, application *app.Application, id string) error {
	token, err := application.VehicleService.CreateTempData(ctx, id)
	if err != nil {
		return err
	}

	// The token is what gets rendered as a QR code on the phone; print it
	// verbatim so it can be piped into a renderer.
	fmt.Println(token)
	return nil
}

func promptPassword() (string, error) {
	fmt.Fprint(os.Stderr, "password: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
