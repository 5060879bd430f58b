package main

import (
	"github.com/merchantops/backoffice/api"
)

var envPath string = "."

func main() {
	server := api.NewServer(envPath)
	server.Start()
}
