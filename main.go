package main

import "github.com/killallgit/podcast-api/cmd"

// @title           Podcast API
// @version         1.0.0
// @description     Podcasts, episodes and user accounts
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/podcast-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Token returned by /api/v1/users/login, prefixed with Bearer
func main() {
	cmd.Execute()
}
