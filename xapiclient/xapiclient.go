package xapiclient

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const ENV_XAPI_KEY = "xapi_key"
const ENV_XAPI_BASE_URL = "xapi_base_url"
const ENV_PROXY_DSN = "proxy_dsn"

const maxResults = 100

// TweetService is the retrieval surface exposed to hosting layers.
type TweetService interface {
	GetUserByName(userHandle string) (*UserResponse, error)
	GetFollowingByUserID(userID string) (*UserResponse, error)
	GetTweets(ids []string) (*TweetResponse, error)
	GetTweetsByUserIDInTimeSpan(userID string, dayRange DayRange) ([]Tweet, error)
	GetListsByUserID(userID string) (*UserResponse, error)
	GetTweetsByListIDInTimeSpan(listID string, dayRange DayRange) ([]Tweet, error)
}

type XAPIService struct {
	apiKey     string
	baseUrl    string
	httpClient *http.Client
	now        func() time.Time
}

var _ TweetService = (*XAPIService)(nil)

func NewXAPIService(apiKey string, baseUrl string, proxyDSN string) *XAPIService {
	transport := &http.Transport{}
	if proxyDSN != "" {
		proxyURL, err := url.Parse(proxyDSN)
		if err != nil {
			panic(err)
		}

		transport = &http.Transport{
			Proxy: http.ProxyURL(proxyURL),
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: false,
			},
		}
	}

	return &XAPIService{
		apiKey:  apiKey,
		baseUrl: strings.TrimRight(strings.TrimSpace(baseUrl), "/"),
		httpClient: &http.Client{
			Timeout:   10 * time.Second,
			Transport: transport,
		},
		now: time.Now,
	}
}

func (s *XAPIService) makeRequest(uri string) (*APIResponse, error) {
	req, err := http.NewRequest("GET", uri, nil)
	if err != nil {
		return nil, fmt.Errorf("error create request: %w", err)
	}

	// headers are set per call, never assumed to persist on the client
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error send request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error read response: %w", err)
	}

	return &APIResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		RawBody:    bodyBytes,
	}, nil
}

// fetch runs one exchange and classifies the outcome.
func (s *XAPIService) fetch(uri string) ([]byte, error) {
	response, err := s.makeRequest(uri)
	if err != nil {
		return nil, err
	}
	return processResponse(response, s.now())
}

// GetUserByName gets a user by handle.
func (s *XAPIService) GetUserByName(userHandle string) (*UserResponse, error) {
	uri := fmt.Sprintf("%s/users/by/username/%s?expansions=most_recent_tweet_id,pinned_tweet_id&tweet.fields=text,created_at", s.baseUrl, userHandle)

	body, err := s.fetch(uri)
	if err != nil {
		return nil, err
	}
	userResponse := UserResponse{}
	err = json.Unmarshal(body, &userResponse)
	return &userResponse, err
}

// GetFollowingByUserID gets accounts the user follows. Forbidden for the
// free API access level.
func (s *XAPIService) GetFollowingByUserID(userID string) (*UserResponse, error) {
	uri := fmt.Sprintf("%s/users/%s/following?expansions=most_recent_tweet_id,pinned_tweet_id&tweet.fields=created_at,text", s.baseUrl, userID)

	body, err := s.fetch(uri)
	if err != nil {
		return nil, err
	}
	userResponse := UserResponse{}
	err = json.Unmarshal(body, &userResponse)
	return &userResponse, err
}

// GetTweets gets tweets by ids. Returns the wire shape without normalization.
func (s *XAPIService) GetTweets(ids []string) (*TweetResponse, error) {
	uri := fmt.Sprintf("%s/tweets?ids=%s&tweet.fields=text,created_at", s.baseUrl, JoinIDs(ids))

	body, err := s.fetch(uri)
	if err != nil {
		return nil, err
	}
	tweetResponse := TweetResponse{}
	err = json.Unmarshal(body, &tweetResponse)
	return &tweetResponse, err
}

// GetTweetsByUserIDInTimeSpan gets a user's tweets inside the day-range
// window, normalized.
func (s *XAPIService) GetTweetsByUserIDInTimeSpan(userID string, dayRange DayRange) ([]Tweet, error) {
	startDate, endDate := TimeWindow(dayRange, s.now())
	uri := fmt.Sprintf("%s/users/%s/tweets?max_results=%d&start_time=%s&end_time=%s&tweet.fields=created_at,entities,in_reply_to_user_id,text&expansions=referenced_tweets.id,referenced_tweets.id.author_id&user.fields=id,name,url,username",
		s.baseUrl, userID, maxResults, startDate.Format(timeFormat), endDate.Format(timeFormat))

	body, err := s.fetch(uri)
	if err != nil {
		return nil, err
	}
	tweetResponse := TweetResponse{}
	if err := json.Unmarshal(body, &tweetResponse); err != nil {
		return nil, err
	}
	return ProcessTweetResponse(&tweetResponse), nil
}

// GetListsByUserID gets the lists a user follows. The list envelope reuses
// the user response shape.
func (s *XAPIService) GetListsByUserID(userID string) (*UserResponse, error) {
	uri := fmt.Sprintf("%s/users/%s/followed_lists?list.fields=id,name,owner_id,private", s.baseUrl, userID)

	body, err := s.fetch(uri)
	if err != nil {
		return nil, err
	}
	userResponse := UserResponse{}
	err = json.Unmarshal(body, &userResponse)
	return &userResponse, err
}

// GetTweetsByListIDInTimeSpan gets a list timeline, normalized. The lists
// endpoint accepts no time window, dayRange is kept for parity with the user
// timeline.
func (s *XAPIService) GetTweetsByListIDInTimeSpan(listID string, dayRange DayRange) ([]Tweet, error) {
	uri := fmt.Sprintf("%s/lists/%s/tweets?max_results=%d&tweet.fields=created_at,entities,in_reply_to_user_id,text&expansions=referenced_tweets.id,referenced_tweets.id.author_id&user.fields=id,name,url,username",
		s.baseUrl, listID, maxResults)

	body, err := s.fetch(uri)
	if err != nil {
		return nil, err
	}
	tweetResponse := TweetResponse{}
	if err := json.Unmarshal(body, &tweetResponse); err != nil {
		return nil, err
	}
	return ProcessTweetResponse(&tweetResponse), nil
}
