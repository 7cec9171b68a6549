// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

// WelcomeText seeds every conversation.
const WelcomeText = "Hi! I'm your AlgaeVerse assistant. I can help you with anything about the smart algae farming system - from costs and technical details to environmental benefits and investment proposals. What would you like to know about? You can ask me about:\n\n" +
	"• Costs and pricing\n" +
	"• Technical features and innovations\n" +
	"• Environmental impact and benefits\n" +
	"• Investment opportunities\n" +
	"• Implementation timeline\n" +
	"• Or anything else about AlgaeVerse!"

// ChatErrorText replaces a failed chat reply.
const ChatErrorText = "Sorry, I encountered an error. Please try again."

// UploadErrorText replaces a failed upload acknowledgement.
const UploadErrorText = "Sorry, there was an error uploading your file. Please try again."

// FileUploadedText is the user-side record of an upload.
func FileUploadedText(name string) string {
	return "File uploaded: " + name
}

// UploadAckText acknowledges a processed file.
func UploadAckText(name string) string {
	return "Great! I've processed your file \"" + name + "\". I can see the additional requirements and I'm ready to help you with any questions about AlgaeVerse. What specific aspect would you like to explore? For example:\n\n" +
		"• How much would this cost?\n" +
		"• What are the technical specifications?\n" +
		"• What's the environmental impact?\n" +
		"• How long until ROI?\n" +
		"• Or anything else you'd like to know!"
}
