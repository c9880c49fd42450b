package main

import (
	"context"
	"time"

	"joycursor/services/app"
	"joycursor/services/hal/platform"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	b, err := platform.Open()
	if err != nil {
		println("bring-up failed:", err.Error())
		halt()
	}
	println("board:", b.Name)

	if err := app.Run(context.Background(), b); err != nil {
		println("loop stopped:", err.Error())
	}
	halt()
}

func halt() {
	for {
		time.Sleep(time.Hour)
	}
}
