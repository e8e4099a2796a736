package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"teman-tukang/internal/config"
	"teman-tukang/internal/domain"
	"teman-tukang/internal/sentiment"
)

type Scenario struct {
	Name string
	Text string
	Want domain.Sentiment
}

func main() {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	classifier, err := sentiment.NewFromConfig(cfg, nil)
	if err != nil {
		log.Fatalf("sentiment classifier: %v", err)
	}

	scenarios := []Scenario{
		{Name: "Keluhan singkat", Text: "tidak memuaskan", Want: domain.SentimentNegative},
		{Name: "Pujian kerja", Text: "Kerjanya rapi dan cepat, sangat memuaskan", Want: domain.SentimentPositive},
		{Name: "Pujian sikap", Text: "Tukangnya ramah dan profesional, rekomendasi!", Want: domain.SentimentPositive},
		{Name: "Terlambat", Text: "Datang telat dan hasilnya jelek", Want: domain.SentimentNegative},
		{Name: "Masalah berulang", Text: "Atap masih bocor lagi, kecewa", Want: domain.SentimentNegative},
		{Name: "Campuran condong positif", Text: "Harga mahal tapi hasil bagus dan rapi", Want: domain.SentimentPositive},
		{Name: "Teks kosong", Text: "", Want: domain.SentimentNegative},
	}

	passed := 0
	total := len(scenarios)

	for _, sc := range scenarios {
		runCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		got, err := classifier.Classify(runCtx, sc.Text)
		cancel()
		if err != nil {
			fmt.Printf("FAIL [%s] classify: %v\n", sc.Name, err)
			continue
		}
		if got == sc.Want {
			fmt.Printf("PASS [%s] esperado=%s obtenido=%s\n", sc.Name, sc.Want, got)
			passed++
		} else {
			fmt.Printf("FAIL [%s] esperado=%s obtenido=%s\n", sc.Name, sc.Want, got)
		}
	}

	fmt.Printf("Tests: %d/%d pasaron (backend=%s)\n", passed, total, cfg.SentimentBackend)
	if passed != total {
		os.Exit(1)
	}
}
