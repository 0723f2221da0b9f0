package main

import "github.com/hanksha/tennis-booking-backend/cmd"

func main() {
	cmd.Execute()
}
