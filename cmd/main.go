package main

import (
	"github.com/prateeksteaparty/vital-wellness/config"
	"github.com/prateeksteaparty/vital-wellness/routes"
	"github.com/prateeksteaparty/vital-wellness/services"
	"github.com/prateeksteaparty/vital-wellness/utils"
)

func main() {
	config.InitDB()
	utils.InitMailer()
	services.Init(config.DB, config.DigestQuietPeriod(), utils.SendEmail)

	r := routes.SetupRouter()
	r.Run(":8080")
}
