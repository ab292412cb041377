package main

import "karigar_backend/internal/app"

func main() {
	app.Run()
}
