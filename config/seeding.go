package config

import (
	"motoassist-backend/models"

	log "github.com/sirupsen/logrus"
)

// vehicleCatalogSeed mirrors the reference dataset the intake form selectors
// were built from: brand -> engine type -> model -> displacement values.
// A displacement of 0 means CC is not applicable (electric models).
var vehicleCatalogSeed = map[string]map[string]map[string][]int{
	"Honda": {
		"Petrol": {
			"Activa 6G":  {110},
			"Dio":        {110, 125},
			"Shine":      {125},
			"SP 125":     {125},
			"Unicorn":    {160},
			"Hornet 2.0": {184},
			"CB350":      {350},
		},
	},
	"TVS": {
		"Petrol": {
			"Jupiter":    {110, 125},
			"NTORQ 125":  {125},
			"Raider":     {125},
			"Apache RTR": {160, 180, 200},
			"Ronin":      {225},
		},
		"Electric": {
			"iQube": {0},
		},
	},
	"Hero": {
		"Petrol": {
			"Splendor+":      {100},
			"HF Deluxe":      {100},
			"Passion+":       {100},
			"Super Splendor": {125},
			"Glamour":        {125},
			"Xtreme 160R":    {160},
			"Karizma XMR":    {210},
		},
		"Electric": {
			"Vida V1": {0},
		},
	},
	"Bajaj": {
		"Petrol": {
			"Platina": {100, 110},
			"CT 110X": {110},
			"Pulsar":  {125, 150, 160, 200, 250},
			"Avenger": {160, 220},
			"Dominar": {250, 400},
		},
		"Electric": {
			"Chetak": {0},
		},
	},
	"Royal Enfield": {
		"Petrol": {
			"Hunter 350":         {350},
			"Classic 350":        {350},
			"Bullet 350":         {350},
			"Meteor 350":         {350},
			"Himalayan":          {411, 450},
			"Interceptor 650":    {650},
			"Continental GT 650": {650},
		},
	},
	"Suzuki": {
		"Petrol": {
			"Access 125":     {125},
			"Burgman Street": {125},
			"Gixxer":         {155},
			"V-Strom SX":     {250},
		},
	},
	"Yamaha": {
		"Petrol": {
			"RayZR 125":   {125},
			"Fascino 125": {125},
			"FZ-S FI":     {149},
			"R15 V4":      {155},
			"MT-15 V2":    {155},
		},
	},
}

// SeedVehicleCatalog loads the reference vehicle data on first boot. It is a
// no-op when the table already has rows, so operator edits survive restarts.
func SeedVehicleCatalog() error {
	var count int64
	if err := DB.Model(&models.VehicleCatalogEntry{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for brand, engineTypes := range vehicleCatalogSeed {
		for engineType, modelNames := range engineTypes {
			for modelName, ccs := range modelNames {
				entry := models.VehicleCatalogEntry{
					Brand:           brand,
					EngineType:      engineType,
					Model:           modelName,
					DisplacementsCC: ccs,
				}
				if err := DB.Create(&entry).Error; err != nil {
					return err
				}
			}
		}
	}

	log.Info("vehicle catalog seeded")
	return nil
}
