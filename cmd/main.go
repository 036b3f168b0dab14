package main

import "github.com/gestaoimob/desocupacao/internal/app"

func main() {
	app.InitDefaultLogger()
	app.MustReadEnv()
	app.MustInitApplicationLogger()

	app.MustConnectPostgres()
	defer app.DisconnectPostgres()

	app.MustOpenBadger()
	defer app.CloseBadger()

	app.MustListenAndServeHTTP()
}
