package main

import "storefront/internal/app"

func main() {
	app.Run()
}
