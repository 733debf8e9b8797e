package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string

	MongoURL      string
	MongoDatabase string
	RedisURL      string
	RedisPassword string
	RedisDB       int

	// Platform stats endpoints. Each adapter appends /{username}.
	LeetcodeAPIURL   string
	GFGAPIURL        string
	GithubAPIURL     string
	GithubToken      string
	CodechefURL      string
	HackerrankURL    string
	AdapterTimeout   time.Duration
	FreshnessWindow  time.Duration
	RefreshInterval  time.Duration
	WorkerPoolSize   int
	SnapshotCacheTTL time.Duration

	// Emails excluded from the leaderboard in addition to users
	// flagged isAdmin in the store.
	AdminEmails []string
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[Config] no .env file found, using environment variables")
	}

	config := Config{
		HTTPPort:         getEnv("HTTPPORT", "8085"),
		MongoURL:         getEnv("MONGOURL", "mongodb://localhost:27017"),
		MongoDatabase:    getEnv("MONGODATABASE", "crevo"),
		RedisURL:         getEnv("REDISURL", "localhost:6379"),
		RedisPassword:    getEnv("REDISPASSWORD", ""),
		RedisDB:          getEnvInt("REDISDB", 0),
		LeetcodeAPIURL:   getEnv("LEETCODEAPIURL", "https://leetcode-stats-api.herokuapp.com"),
		GFGAPIURL:        getEnv("GFGAPIURL", "https://geeks-for-geeks-api.vercel.app"),
		GithubAPIURL:     getEnv("GITHUBAPIURL", "https://api.github.com/users"),
		GithubToken:      getEnv("GITHUBTOKEN", ""),
		CodechefURL:      getEnv("CODECHEFURL", "https://www.codechef.com/users"),
		HackerrankURL:    getEnv("HACKERRANKURL", "https://www.hackerrank.com/profile"),
		AdapterTimeout:   getEnvDuration("ADAPTERTIMEOUT", 10*time.Second),
		FreshnessWindow:  getEnvDuration("FRESHNESSWINDOW", 25*time.Minute),
		RefreshInterval:  getEnvDuration("REFRESHINTERVAL", 25*time.Minute),
		WorkerPoolSize:   getEnvInt("WORKERPOOLSIZE", 8),
		SnapshotCacheTTL: getEnvDuration("SNAPSHOTCACHETTL", 5*time.Minute),
		AdminEmails:      getEnvList("ADMINEMAILS", nil),
	}

	return config
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
