package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// SourceAPI holds the connection settings for one product-search API.
type SourceAPI struct {
	Endpoint    string
	Host        string
	Key         string
	QueryParams map[string]string
}

var (
	Amazon   SourceAPI
	Flipkart SourceAPI

	// SearchQuery is the product query driven through every source.
	SearchQuery string

	// ReportDir is where JSON artifacts are written.
	ReportDir string

	// FetchDelay separates consecutive API fetches to respect
	// third-party rate limits.
	FetchDelay time.Duration

	// ResponseTimeThreshold is the maximum acceptable API latency.
	ResponseTimeThreshold time.Duration

	// AmazonSite is the storefront host used to canonicalize scraped links.
	AmazonSite string

	// FrontendProductIndex selects which scraped result is validated
	// against the API.
	FrontendProductIndex int

	// AmazonCompareIndex and FlipkartCompareIndex select the records
	// used in the cross-site price comparison.
	AmazonCompareIndex   int
	FlipkartCompareIndex int

	MongoURI      string
	AWSRegion     string
	AWSBucketName string
	SendGridKey   string
	NotifyEmail   string
)

// LoadConfig loads environment variables from .env file
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values or system environment variables")
	}

	SearchQuery = getEnv("SEARCH_QUERY", "titan watch")

	Amazon = SourceAPI{
		Endpoint: getEnv("AMAZON_API_ENDPOINT", "https://real-time-amazon-data.p.rapidapi.com/search"),
		Host:     getEnv("AMAZON_API_HOST", "real-time-amazon-data.p.rapidapi.com"),
		Key:      os.Getenv("AMAZON_API_KEY"),
		QueryParams: map[string]string{
			"query":             SearchQuery,
			"page":              "1",
			"country":           getEnv("AMAZON_COUNTRY", "IN"),
			"sort_by":           "RELEVANCE",
			"product_condition": "ALL",
			"is_prime":          "false",
		},
	}

	Flipkart = SourceAPI{
		Endpoint: getEnv("FLIPKART_API_ENDPOINT", "https://real-time-flipkart-api.p.rapidapi.com/product-search"),
		Host:     getEnv("FLIPKART_API_HOST", "real-time-flipkart-api.p.rapidapi.com"),
		Key:      os.Getenv("FLIPKART_API_KEY"),
		QueryParams: map[string]string{
			"q":       SearchQuery,
			"page":    "1",
			"sort_by": "popularity",
		},
	}

	ReportDir = getEnv("REPORT_DIR", "reports")
	FetchDelay = time.Duration(getEnvInt("FETCH_DELAY_MS", 2000)) * time.Millisecond
	ResponseTimeThreshold = time.Duration(getEnvInt("RESPONSE_TIME_THRESHOLD_MS", 10000)) * time.Millisecond

	AmazonSite = getEnv("AMAZON_SITE", "www.amazon.in")
	FrontendProductIndex = getEnvInt("FRONTEND_PRODUCT_INDEX", 6)
	AmazonCompareIndex = getEnvInt("AMAZON_COMPARE_INDEX", 0)
	FlipkartCompareIndex = getEnvInt("FLIPKART_COMPARE_INDEX", 23)

	MongoURI = os.Getenv("MONGO_URI")
	AWSRegion = getEnv("AWS_REGION", "ap-south-1")
	AWSBucketName = os.Getenv("AWS_BUCKET_NAME")
	SendGridKey = os.Getenv("SENDGRID_API_KEY")
	NotifyEmail = os.Getenv("NOTIFY_EMAIL")
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
