package xapiclient

import "strings"

// ProcessTweetResponse joins a data+includes page into self-contained tweets.
// Replies are dropped from the top level, authors and referenced tweets are
// resolved by id against includes, link entities are flattened. Referenced
// tweets are resolved one level deep only.
func ProcessTweetResponse(response *TweetResponse) []Tweet {
	users := map[string]UserData{}
	includedTweets := map[string]TweetData{}
	if response.Includes != nil {
		for _, user := range response.Includes.Users {
			users[user.Id] = user
		}
		for _, tweetData := range response.Includes.Tweets {
			includedTweets[tweetData.Id] = tweetData
		}
	}

	tweets := []Tweet{}
	for _, record := range response.Data {
		if record.InReplyToUserId != "" {
			continue
		}

		tweet := Tweet{
			Id:          record.Id,
			Text:        record.Text,
			CreatedDate: record.CreatedAt,
			TweetType:   classifyTweetType(record.Text),
			Author:      lookupAuthor(users, record.AuthorId),
		}

		if record.Entities != nil {
			for _, entity := range record.Entities.Urls {
				tweet.URLs = append(tweet.URLs, TweetURL{
					Url:         entity.Url,
					ExpandedUrl: entity.ExpandedUrl,
				})
			}
		}

		for _, ref := range record.ReferencedTweets {
			// the ref type wins over the text heuristic
			refTweet := Tweet{Id: ref.Id, TweetType: ref.Type}
			if refData, ok := includedTweets[ref.Id]; ok {
				refTweet.Text = refData.Text
				refTweet.CreatedDate = refData.CreatedAt
				refTweet.Author = lookupAuthor(users, refData.AuthorId)
			}
			tweet.ReferencedTweets = append(tweet.ReferencedTweets, refTweet)
		}

		tweets = append(tweets, tweet)
	}
	return tweets
}

func classifyTweetType(text string) string {
	if strings.HasPrefix(strings.ToUpper(text), "RT ") {
		return TweetTypeRepost
	}
	return TweetTypeOriginal
}

// lookupAuthor resolves an author id against the includes index. A missing
// author yields empty fields, never an error.
func lookupAuthor(users map[string]UserData, authorId string) TwitterUser {
	author := users[authorId]
	return TwitterUser{
		Id:       author.Id,
		Name:     author.Name,
		Username: author.Username,
	}
}
