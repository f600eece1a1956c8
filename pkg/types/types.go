// Package types holds the Bot API values exchanged by requests.
//
// Response objects are the ones decoded by telegram-bot-api; this package adds
// the parameter types that need their own wire representation.
package types

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type (
	User                 = tgbotapi.User
	Chat                 = tgbotapi.Chat
	Message              = tgbotapi.Message
	MessageID            = tgbotapi.MessageID
	Update               = tgbotapi.Update
	WebhookInfo          = tgbotapi.WebhookInfo
	File                 = tgbotapi.File
	UserProfilePhotos    = tgbotapi.UserProfilePhotos
	ChatMember           = tgbotapi.ChatMember
	BotCommand           = tgbotapi.BotCommand
	BotCommandScope      = tgbotapi.BotCommandScope
	StickerSet           = tgbotapi.StickerSet
	Poll                 = tgbotapi.Poll
	InlineKeyboardMarkup = tgbotapi.InlineKeyboardMarkup
	InlineKeyboardButton = tgbotapi.InlineKeyboardButton
	ResponseParameters   = tgbotapi.ResponseParameters
	APIResponse          = tgbotapi.APIResponse
)

// True is the result of methods that return nothing but success.
type True bool

// BotShortDescription is the result of getMyShortDescription.
type BotShortDescription struct {
	ShortDescription string `json:"short_description"`
}

type ParseMode string

const (
	ParseModeMarkdown   ParseMode = tgbotapi.ModeMarkdown
	ParseModeMarkdownV2 ParseMode = tgbotapi.ModeMarkdownV2
	ParseModeHTML       ParseMode = tgbotapi.ModeHTML
)

// Escape escapes s so it renders literally in the given parse mode.
func Escape(mode ParseMode, s string) string {
	return tgbotapi.EscapeText(string(mode), s)
}

// EscapeMarkdownV2 escapes special characters in Markdown V2 format.
func EscapeMarkdownV2(s string) string {
	return Escape(ParseModeMarkdownV2, s)
}

type ChatAction string

const (
	ChatActionTyping          ChatAction = "typing"
	ChatActionUploadPhoto     ChatAction = "upload_photo"
	ChatActionRecordVideo     ChatAction = "record_video"
	ChatActionUploadVideo     ChatAction = "upload_video"
	ChatActionRecordVoice     ChatAction = "record_voice"
	ChatActionUploadVoice     ChatAction = "upload_voice"
	ChatActionUploadDocument  ChatAction = "upload_document"
	ChatActionChooseSticker   ChatAction = "choose_sticker"
	ChatActionFindLocation    ChatAction = "find_location"
	ChatActionRecordVideoNote ChatAction = "record_video_note"
	ChatActionUploadVideoNote ChatAction = "upload_video_note"
)
