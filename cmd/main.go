package main

import (
	"log"

	"github.com/jhoesantos777/apprecuperacaoefoco-sub001/config"
	"github.com/jhoesantos777/apprecuperacaoefoco-sub001/routes"
	"github.com/jhoesantos777/apprecuperacaoefoco-sub001/services"
	"github.com/jhoesantos777/apprecuperacaoefoco-sub001/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitRekognition()

	if err := services.SeedDevotionals(config.DB); err != nil {
		log.Fatalf("devotional seed failed: %v", err)
	}

	r := routes.SetupRouter()
	r.Run(":8080")
}
