// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-visible strings of the Thoughts client.
//
// All Msg* constants are shown in the terminal UI. Keeping them in one place
// keeps the wording consistent between screens and error banners.
package app

const (
	// AppName is shown in page titles and build info.
	AppName = "Thoughts"

	// MsgOnboardingHeadline is the first onboarding screen.
	MsgOnboardingHeadline = "Capture your mind."

	// MsgOnboardingTagline follows the headline.
	MsgOnboardingTagline = "A quiet place for your thoughts, ideas, and notebooks."

	MsgOnboardingIntro    = "LET'S GET INTRODUCED"
	MsgOnboardingAskName  = "What should we call you?"
	MsgOnboardingHaveUser = "I have an account"

	MsgWelcomeBack   = "Welcome back."
	MsgCreateAccount = "Create your private space."
	MsgProcessing    = "Processing..."

	// MsgGreetingFormat takes the user's first name.
	MsgGreetingFormat = "Hello, %s."

	MsgNotebooks      = "Notebooks"
	MsgRecentThoughts = "Recent Thoughts"
	MsgNoThoughtsYet  = "Write your first thought."
	MsgNotebookEmpty  = "This notebook is empty."

	MsgNewNotebook            = "New Notebook"
	MsgNotebookNamePrompt     = "e.g. Artificial Intelligence"
	MsgEditorPlaceholder      = "Type your thoughts here..."
	MsgSearchPlaceholder      = "Search thoughts..."
	MsgSearchTypeToSearch     = "Type to search..."
	MsgSearchNoResults        = "No results found."
	MsgSearchResults          = "RESULTS"
	MsgSettings               = "Settings"
	MsgSignOut                = "Sign Out"
	MsgAccountDetails         = "Account Details"
	MsgSaving                 = "Saving..."
	MsgSaved                  = "Saved"
	MsgCopied                 = "Copied to clipboard"
	MsgNothingToCopy          = "Nothing to copy"
	MsgUnsavedQuitWarning     = "Changes are not saved. Press ctrl+c again to quit anyway."
	MsgDiscardConfirmation    = "Changes are not saved. Press ctrl+d to discard them."
	MsgPreviewUnavailable     = "Preview is not available."
	MsgLoadFailed             = "Could not load your thoughts."
	MsgCredentialsRequired    = "Email and password are required."
	MsgNameRequired           = "Please tell us your name."
	MsgUnexpectedError        = "An error occurred. Please try again."
	MsgDuplicateEmail         = "Email already in use"
	MsgInvalidCredentials     = "Invalid credentials"
	MsgInvalidEmail           = "Please enter a valid email address."
	MsgWeakPassword           = "Password must be at least 8 characters."
	MsgEmptyNotebookName      = "Notebook name is required."
	MsgPersistenceWriteFailed = "Unable to save. Please try again."
)
