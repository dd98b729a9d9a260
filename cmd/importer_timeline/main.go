package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"xapi/xapiclient"
)

func panicErr(err error) {
	if err != nil {
		panic(err)
	}
}

func main() {
	userID := flag.String("user", "", "user id whose timeline to import")
	rangeName := flag.String("range", "today", "day range: today, yesterday or last7days")
	outPath := flag.String("out", "timeline.csv", "csv output path")
	flag.Parse()

	godotenv.Load("../../.env")
	godotenv.Load()

	if *userID == "" {
		log.Fatal("user id is required, pass -user")
	}
	dayRange, err := xapiclient.ParseDayRange(*rangeName)
	if err != nil {
		log.Fatal(err)
	}

	api := xapiclient.NewXAPIService(os.Getenv(xapiclient.ENV_XAPI_KEY), os.Getenv(xapiclient.ENV_XAPI_BASE_URL), os.Getenv(xapiclient.ENV_PROXY_DSN))
	tweets, err := api.GetTweetsByUserIDInTimeSpan(*userID, dayRange)
	panicErr(err)
	fmt.Println("found tweets", len(tweets))

	w, err := os.OpenFile(*outPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0655)
	panicErr(err)
	defer w.Close()
	writer := csv.NewWriter(w)
	writer.Write([]string{"author_username", "author_id", "tweet_id", "tweet_type", "created_at", "text"})
	for _, tweet := range tweets {
		writer.Write([]string{
			tweet.Author.Username,
			tweet.Author.Id,
			tweet.Id,
			tweet.TweetType,
			tweet.CreatedDate.Format(time.RFC3339),
			tweet.Text,
		})
	}
	writer.Flush()
	panicErr(writer.Error())
	fmt.Println("written to", *outPath)
}
