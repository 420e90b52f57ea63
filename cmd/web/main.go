package main

import "cofoundermatch_backend/internal/app"

func main() {
	app.Run()
}
