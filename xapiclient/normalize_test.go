package xapiclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timelineFixture() *TweetResponse {
	createdAt := time.Date(2024, 5, 14, 10, 0, 0, 0, time.UTC)
	return &TweetResponse{
		Data: []TweetData{
			{
				Id:        "100",
				Text:      "original post with a link",
				CreatedAt: createdAt,
				AuthorId:  "1",
				Entities: &Entities{
					Urls: []UrlEntity{
						{Start: 0, End: 23, Url: "https://t.co/abc", ExpandedUrl: "https://example.com/a", DisplayUrl: "example.com/a"},
						{Start: 24, End: 47, Url: "https://t.co/def", ExpandedUrl: "https://example.com/b", DisplayUrl: "example.com/b"},
					},
				},
			},
			{
				Id:              "101",
				Text:            "@alice replying here",
				CreatedAt:       createdAt,
				AuthorId:        "1",
				InReplyToUserId: "2",
			},
			{
				Id:        "102",
				Text:      "RT @bob something worth sharing",
				CreatedAt: createdAt,
				AuthorId:  "1",
				ReferencedTweets: []ReferencedTweetRef{
					{Type: "retweeted", Id: "200"},
				},
			},
		},
		Includes: &TweetIncludes{
			Users: []UserData{
				{Id: "1", Name: "Alice", Username: "alice"},
				{Id: "2", Name: "Bob", Username: "bob"},
			},
			Tweets: []TweetData{
				{Id: "200", Text: "something worth sharing", CreatedAt: createdAt.Add(-time.Hour), AuthorId: "2"},
			},
		},
	}
}

func TestProcessTweetResponse_FiltersReplies(t *testing.T) {
	tweets := ProcessTweetResponse(timelineFixture())

	require.Len(t, tweets, 2)
	assert.Equal(t, "100", tweets[0].Id)
	assert.Equal(t, "102", tweets[1].Id)
}

func TestProcessTweetResponse_TweetType(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"plain text", "hi", TweetTypeOriginal},
		{"repost prefix", "RT @bob hi", TweetTypeRepost},
		{"lowercase prefix", "rt @bob hi", TweetTypeRepost},
		{"prefix inside text", "great RT material", TweetTypeOriginal},
		{"no trailing space", "RTX is a graphics card", TweetTypeOriginal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response := &TweetResponse{Data: []TweetData{{Id: "1", Text: tt.text}}}
			tweets := ProcessTweetResponse(response)
			require.Len(t, tweets, 1)
			assert.Equal(t, tt.expected, tweets[0].TweetType)
		})
	}
}

func TestProcessTweetResponse_ResolvesAuthor(t *testing.T) {
	tweets := ProcessTweetResponse(timelineFixture())

	assert.Equal(t, TwitterUser{Id: "1", Name: "Alice", Username: "alice"}, tweets[0].Author)
}

func TestProcessTweetResponse_UnresolvedAuthorIsEmpty(t *testing.T) {
	response := &TweetResponse{
		Data: []TweetData{{Id: "1", Text: "orphan", AuthorId: "999"}},
	}
	tweets := ProcessTweetResponse(response)

	require.Len(t, tweets, 1)
	assert.Equal(t, TwitterUser{}, tweets[0].Author)
}

func TestProcessTweetResponse_Urls(t *testing.T) {
	tweets := ProcessTweetResponse(timelineFixture())

	require.Len(t, tweets[0].URLs, 2)
	assert.Equal(t, TweetURL{Url: "https://t.co/abc", ExpandedUrl: "https://example.com/a"}, tweets[0].URLs[0])
	assert.Equal(t, TweetURL{Url: "https://t.co/def", ExpandedUrl: "https://example.com/b"}, tweets[0].URLs[1])
	assert.Empty(t, tweets[1].URLs)
}

func TestProcessTweetResponse_ReferencedTweetResolved(t *testing.T) {
	tweets := ProcessTweetResponse(timelineFixture())

	repost := tweets[1]
	require.Len(t, repost.ReferencedTweets, 1)
	ref := repost.ReferencedTweets[0]
	assert.Equal(t, "200", ref.Id)
	assert.Equal(t, "retweeted", ref.TweetType)
	assert.Equal(t, "something worth sharing", ref.Text)
	assert.Equal(t, time.Date(2024, 5, 14, 9, 0, 0, 0, time.UTC), ref.CreatedDate)
	assert.Equal(t, TwitterUser{Id: "2", Name: "Bob", Username: "bob"}, ref.Author)
}

func TestProcessTweetResponse_ReferencedTweetMissingFromIncludes(t *testing.T) {
	response := &TweetResponse{
		Data: []TweetData{
			{
				Id:   "1",
				Text: "quoting a deleted tweet",
				ReferencedTweets: []ReferencedTweetRef{
					{Type: "quoted", Id: "404"},
				},
			},
		},
	}
	tweets := ProcessTweetResponse(response)

	require.Len(t, tweets, 1)
	require.Len(t, tweets[0].ReferencedTweets, 1)
	ref := tweets[0].ReferencedTweets[0]
	assert.Equal(t, "404", ref.Id)
	assert.Equal(t, "quoted", ref.TweetType)
	assert.Equal(t, "", ref.Text)
	assert.True(t, ref.CreatedDate.IsZero())
	assert.Equal(t, TwitterUser{}, ref.Author)
}

func TestProcessTweetResponse_RefTypeOverridesTextHeuristic(t *testing.T) {
	response := &TweetResponse{
		Data: []TweetData{
			{
				Id:               "1",
				Text:             "check this out",
				ReferencedTweets: []ReferencedTweetRef{{Type: "quoted", Id: "2"}},
			},
		},
		Includes: &TweetIncludes{
			Tweets: []TweetData{{Id: "2", Text: "RT @bob nested repost"}},
		},
	}
	tweets := ProcessTweetResponse(response)

	// the ref carries its raw type even though the resolved text starts with RT
	assert.Equal(t, "quoted", tweets[0].ReferencedTweets[0].TweetType)
}

func TestProcessTweetResponse_ReferencedRepliesAreKept(t *testing.T) {
	response := &TweetResponse{
		Data: []TweetData{
			{
				Id:               "1",
				Text:             "replying in a thread",
				ReferencedTweets: []ReferencedTweetRef{{Type: "replied_to", Id: "2"}},
			},
		},
		Includes: &TweetIncludes{
			Tweets: []TweetData{{Id: "2", Text: "parent reply", InReplyToUserId: "7"}},
		},
	}
	tweets := ProcessTweetResponse(response)

	// the reply filter applies to the top level only
	require.Len(t, tweets[0].ReferencedTweets, 1)
	assert.Equal(t, "parent reply", tweets[0].ReferencedTweets[0].Text)
}

func TestProcessTweetResponse_Empty(t *testing.T) {
	tweets := ProcessTweetResponse(&TweetResponse{})
	assert.Empty(t, tweets)
	assert.NotNil(t, tweets)
}
