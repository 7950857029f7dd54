package main

import (
	"ClassBoard/internal/bootstrap"
	pkg "ClassBoard/pkg/routes"

	"go.uber.org/fx"
)

func main() {
	bootstrap.Loadenv()

	app := fx.New(
		pkg.EchoModules,
	)

	app.Run()
}
