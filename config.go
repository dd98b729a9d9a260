package main

const ENV_LISTEN_ADDR = "listen_addr"
const ENV_ARCHIVE_DATABASE_NAME = "archive_database_name"

// Archived tweet source type constants
const SOURCE_USER_TIMELINE = "user_timeline" // Tweet fetched from a user timeline window
const SOURCE_LIST_TIMELINE = "list_timeline" // Tweet fetched from a list timeline
