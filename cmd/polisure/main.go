package main

import (
	"github.com/polisure/polisure/internal/server"
	"go.uber.org/fx"
)

func main() {
	fx.New(server.Module).Run()
}
