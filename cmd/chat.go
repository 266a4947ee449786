package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rantu/rantu-market/internal"
	"github.com/spf13/cobra"
)

var (
	chatTab     string
	chatContact string
	chatKind    string
)

var (
	// Styles
	speakerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	userSpeakerStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("42"))

	chatTimeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	activeSessionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("62"))

	sessionPreviewStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Italic(true)

	suggestionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135")).
			Italic(true)
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Open the chat view (AI assistant and seller inbox)",
	Long: `Open the storefront chat view.

The view has two tabs: the AI assistant and the inbox of seller/courier
conversations. Conversations persist locally and resume across runs.

Passing --contact opens (or resumes) the conversation with that seller or
courier, the same handoff a product or order page performs.

Inside the view:
  /new           start a fresh AI conversation
  /tab <name>    switch tab (assistant or inbox)
  /switch <id>   switch to a session by id
  /quit          leave the chat view`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		a.engine.ApplyTabParam(chatTab)
		if chatContact != "" {
			a.engine.ApplyHandoff(&internal.Handoff{
				ContactName: chatContact,
				Kind:        contactKindFromFlag(chatKind),
			})
		}

		return runChatLoop(a, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// contactKindFromFlag maps the --kind flag onto a session kind. Anything
// but "courier" means seller, matching the handoff contract's default.
func contactKindFromFlag(kind string) internal.SessionKind {
	if kind == "courier" {
		return internal.KindCourier
	}
	return internal.KindSeller
}

func runChatLoop(a *app, in io.Reader, out io.Writer) error {
	renderChatView(a, out)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "/quit":
			return nil

		case line == "/new":
			a.engine.StartAssistantSession()
			renderChatView(a, out)

		case strings.HasPrefix(line, "/tab "):
			a.engine.ApplyTabParam(strings.TrimSpace(strings.TrimPrefix(line, "/tab ")))
			renderChatView(a, out)

		case strings.HasPrefix(line, "/switch "):
			a.engine.SelectSession(strings.TrimSpace(strings.TrimPrefix(line, "/switch ")))
			renderChatView(a, out)

		case line == "":
			continue

		default:
			active := a.engine.ActiveSession()
			if active == nil {
				fmt.Fprintln(out, sessionPreviewStyle.Render(a.i18n.T("chat.empty.title")))
				continue
			}
			if !a.engine.SendMessage(active.ID, line) {
				continue
			}
			fmt.Fprintln(out, sessionPreviewStyle.Render(a.i18n.T("chat.typing")))
			waitForReply(a.engine)
			renderConversation(a, out, a.engine.Session(active.ID))
		}
	}
}

// waitForReply blocks until the pending reply lands, bounded so a wedged
// timer can never hang the prompt.
func waitForReply(engine *internal.ChatEngine) {
	deadline := time.Now().Add(internal.ReplyDelay + time.Second)
	for engine.Composing() && time.Now().Before(deadline) {
		time.Sleep(50 * time.Millisecond)
	}
}

func renderChatView(a *app, out io.Writer) {
	tab := a.engine.ActiveTab()

	assistantLabel := a.i18n.T("chat.tabs.assistant")
	inboxLabel := a.i18n.T("chat.tabs.inbox")
	if tab == internal.TabAssistant {
		assistantLabel = activeSessionStyle.Render("[" + assistantLabel + "]")
	} else {
		inboxLabel = activeSessionStyle.Render("[" + inboxLabel + "]")
	}
	fmt.Fprintf(out, "\n%s · %s\n\n", assistantLabel, inboxLabel)

	sessions := a.engine.FilteredSessions()
	if len(sessions) == 0 {
		fmt.Fprintln(out, sessionPreviewStyle.Render(a.i18n.T("chat.empty.none")))
		if tab == internal.TabInbox {
			fmt.Fprintln(out, sessionPreviewStyle.Render(a.i18n.T("chat.empty.inbox")))
		} else {
			fmt.Fprintln(out, sessionPreviewStyle.Render(a.i18n.T("chat.empty.assistant")))
		}
		fmt.Fprintln(out)
		return
	}

	activeID := a.engine.ActiveSessionID()
	for _, s := range sessions {
		marker := "  "
		name := s.ContactName
		if s.ID == activeID {
			marker = "→ "
			name = activeSessionStyle.Render(name)
		}
		preview := s.LastMessage
		if len(preview) > 48 {
			preview = preview[:48] + "…"
		}
		fmt.Fprintf(out, "%s%s  %s\n", marker, name, sessionPreviewStyle.Render(preview))
		fmt.Fprintf(out, "   %s\n", chatTimeStyle.Render(s.ID+" · "+s.Timestamp))
	}
	fmt.Fprintln(out)

	renderConversation(a, out, a.engine.ActiveSession())
}

func renderConversation(a *app, out io.Writer, s *internal.ChatSession) {
	if s == nil {
		return
	}

	fmt.Fprintln(out)
	for _, msg := range s.Messages {
		speaker := speakerStyle.Render(s.ContactName)
		if msg.Sender == internal.SenderUser {
			speaker = userSpeakerStyle.Render("Anda")
		}
		fmt.Fprintf(out, "%s %s\n", speaker, chatTimeStyle.Render(msg.Time))
		for _, line := range strings.Split(msg.Text, "\n") {
			fmt.Fprintf(out, "  %s\n", line)
		}
		fmt.Fprintln(out)
	}

	if suggestions := internal.Suggestions(s); len(suggestions) > 0 {
		fmt.Fprintln(out, suggestionStyle.Render("· "+strings.Join(suggestions, "  · ")))
		fmt.Fprintln(out)
	}
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().StringVar(&chatTab, "tab", "", "Open a specific tab (assistant or inbox)")
	chatCmd.Flags().StringVar(&chatContact, "contact", "", "Open the conversation with a seller or courier by name")
	chatCmd.Flags().StringVar(&chatKind, "kind", "seller", "Contact kind for --contact (seller or courier)")
}
