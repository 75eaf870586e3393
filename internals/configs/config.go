package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	MongoURI    string
	MongoDBName string
	DataPath    string
	ModelPath   string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded!")
		}
	} else {
		log.Println("🚀 Running in Railway, using system ENV")
	}

	MongoURI = GetEnv("MONGO_URI", "mongodb://localhost:27017")
	MongoDBName = GetEnv("MONGO_DB", "student_engagement")
	DataPath = GetEnv("DATA_PATH", "Hackathon_Cleaned.xlsx")
	ModelPath = GetEnv("MODEL_PATH", "dropout_model.gob")

	log.Printf("[INFO] MONGO_URI=%s MONGO_DB=%s", MongoURI, MongoDBName)
	log.Printf("[INFO] DATA_PATH=%s MODEL_PATH=%s", DataPath, ModelPath)
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
