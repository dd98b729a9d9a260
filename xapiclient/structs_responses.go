package xapiclient

import "time"

type APIResponse struct {
	StatusCode int                 `json:"status_code"`
	Headers    map[string][]string `json:"headers"`
	RawBody    []byte              `json:"raw_body"`
}

// UserResponse is the single-user envelope returned by the user and list
// endpoints. The list endpoints reuse the same shape.
type UserResponse struct {
	Data     UserData       `json:"data"`
	Includes *TweetIncludes `json:"includes,omitempty"`
}

type UserData struct {
	Id                string `json:"id"`
	Name              string `json:"name"`
	Username          string `json:"username"`
	Url               string `json:"url,omitempty"`
	MostRecentTweetId string `json:"most_recent_tweet_id,omitempty"`
	PinnedTweetId     string `json:"pinned_tweet_id,omitempty"`
}

// TweetResponse is the paginated data+includes envelope of the timeline and
// tweet-lookup endpoints.
type TweetResponse struct {
	Data     []TweetData    `json:"data"`
	Includes *TweetIncludes `json:"includes,omitempty"`
}

// TweetIncludes is the side table of entities referenced by id from data.
type TweetIncludes struct {
	Users  []UserData  `json:"users,omitempty"`
	Tweets []TweetData `json:"tweets,omitempty"`
}

type TweetData struct {
	Id                  string               `json:"id"`
	Text                string               `json:"text"`
	CreatedAt           time.Time            `json:"created_at"`
	AuthorId            string               `json:"author_id,omitempty"`
	InReplyToUserId     string               `json:"in_reply_to_user_id,omitempty"`
	EditHistoryTweetIds []string             `json:"edit_history_tweet_ids,omitempty"`
	Entities            *Entities            `json:"entities,omitempty"`
	ReferencedTweets    []ReferencedTweetRef `json:"referenced_tweets,omitempty"`
}

type Entities struct {
	Urls        []UrlEntity  `json:"urls,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
	Mentions    []Mention    `json:"mentions,omitempty"`
}

type UrlEntity struct {
	Start       int    `json:"start"`
	End         int    `json:"end"`
	Url         string `json:"url"`
	ExpandedUrl string `json:"expanded_url"`
	DisplayUrl  string `json:"display_url"`
	MediaKey    string `json:"media_key,omitempty"`
}

type Annotation struct {
	Start          int     `json:"start"`
	End            int     `json:"end"`
	Probability    float64 `json:"probability"`
	Type           string  `json:"type"`
	NormalizedText string  `json:"normalized_text"`
}

type Mention struct {
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Username string `json:"username"`
	Id       string `json:"id"`
}

type ReferencedTweetRef struct {
	Type string `json:"type"`
	Id   string `json:"id"`
}

// ErrorResponse is the error envelope the API can return with a 2xx status.
type ErrorResponse struct {
	Errors []ErrorDetail `json:"errors"`
}

type ErrorDetail struct {
	Value        string `json:"value,omitempty"`
	Detail       string `json:"detail,omitempty"`
	Title        string `json:"title,omitempty"`
	ResourceType string `json:"resource_type,omitempty"`
	Parameter    string `json:"parameter,omitempty"`
	ResourceId   string `json:"resource_id,omitempty"`
	Type         string `json:"type,omitempty"`
}

const (
	TweetTypeOriginal = "Original"
	TweetTypeRepost   = "Repost"
)

// Tweet is the normalized tweet tree handed back to callers: author and
// referenced tweets resolved from includes, link entities flattened.
type Tweet struct {
	Id               string      `json:"id"`
	Text             string      `json:"text"`
	CreatedDate      time.Time   `json:"createdDate"`
	Author           TwitterUser `json:"author"`
	TweetType        string      `json:"tweetType"`
	ReferencedTweets []Tweet     `json:"referencedTweets,omitempty"`
	URLs             []TweetURL  `json:"urls,omitempty"`
}

type TwitterUser struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

type TweetURL struct {
	Url         string `json:"url"`
	ExpandedUrl string `json:"expandedUrl"`
}
