package console_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/retrosh/internal/console"
)

func lines(name string) string {
	cmd, ok := console.Lookup(name)
	Expect(ok).To(BeTrue())
	return strings.Join(cmd.Lines, "\n")
}

var _ = Describe("Console", func() {
	var c *console.Console

	BeforeEach(func() {
		c = console.New(console.Options{})
	})

	Describe("startup", func() {
		It("reveals banner then help without input entries", func() {
			c.Start()
			Expect(c.Busy()).To(BeTrue())
			c.Flush()

			entries := c.Entries()
			Expect(entries).To(HaveLen(2))
			Expect(entries[0]).To(Equal(console.Entry{Kind: console.KindOutput, Text: lines("banner")}))
			Expect(entries[1]).To(Equal(console.Entry{Kind: console.KindOutput, Text: lines("help")}))
			Expect(c.History()).To(BeEmpty())
		})

		It("runs only once", func() {
			c.Start()
			c.Flush()
			c.Start()
			Expect(c.Busy()).To(BeFalse())
			Expect(c.Entries()).To(HaveLen(2))
		})

		It("animates rather than dumping the text", func() {
			c.Start()
			c.Step()
			entries := c.Entries()
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Text).To(Equal("╔"))
		})
	})

	Describe("Submit", func() {
		It("echoes the raw input and reveals help", func() {
			Expect(c.Submit("  HELP ")).To(Equal(console.OutcomeReveal))
			c.Flush()

			entries := c.Entries()
			Expect(entries).To(HaveLen(2))
			Expect(entries[0]).To(Equal(console.Entry{Kind: console.KindInput, Text: ">   HELP "}))
			Expect(entries[1]).To(Equal(console.Entry{Kind: console.KindOutput, Text: lines("help")}))
			Expect(c.History()).To(Equal([]string{"help"}))
		})

		It("clears the transcript without animation", func() {
			c.Start()
			c.Flush()
			c.Submit("foobar")

			Expect(c.Submit("clear")).To(Equal(console.OutcomeCleared))
			Expect(c.Entries()).To(BeEmpty())
			Expect(c.Busy()).To(BeFalse())
		})

		It("switches to a known theme", func() {
			Expect(c.Submit("theme amber")).To(Equal(console.OutcomeTheme))
			Expect(c.Theme()).To(Equal("amber"))
			Expect(c.Entries()).To(Equal([]console.Entry{
				{Kind: console.KindOutput, Text: "Terminal theme changed to amber"},
			}))
		})

		It("rejects an unknown theme", func() {
			Expect(c.Submit("theme xyz")).To(Equal(console.OutcomeMessage))
			Expect(c.Theme()).To(Equal("green"))
			Expect(c.Entries()).To(Equal([]console.Entry{
				{Kind: console.KindOutput, Text: "Invalid theme. Available: green, amber, blue, red"},
			}))
		})

		It("treats the bare theme keyword as unknown", func() {
			c.Submit("theme")
			Expect(c.Entries()[0].Text).To(Equal("Command not found: theme"))
		})

		DescribeTable("ignores blank input",
			func(raw string) {
				Expect(c.Submit(raw)).To(Equal(console.OutcomeIgnored))
				Expect(c.Entries()).To(BeEmpty())
				Expect(c.History()).To(BeEmpty())
			},
			Entry("empty", ""),
			Entry("spaces", "   "),
			Entry("tabs and newline", "\t\n"),
		)

		It("reports unknown commands without animation", func() {
			Expect(c.Submit("FooBar")).To(Equal(console.OutcomeMessage))
			Expect(c.Busy()).To(BeFalse())
			Expect(c.Entries()).To(Equal([]console.Entry{
				{Kind: console.KindOutput, Text: "Command not found: foobar"},
			}))
		})

		It("ignores submissions while a reveal is running", func() {
			c.Submit("about")
			c.Step()
			before := c.Entries()

			Expect(c.Submit("sudo")).To(Equal(console.OutcomeIgnored))
			Expect(c.Entries()).To(Equal(before))
			Expect(c.History()).To(Equal([]string{"about"}))
		})

		It("clears the pending input buffer", func() {
			c.SetInput("about")
			c.Submit("about")
			Expect(c.Input()).To(BeEmpty())
		})
	})

	Describe("history navigation", func() {
		BeforeEach(func() {
			for _, cmd := range []string{"foo", "theme red", "bar"} {
				c.Submit(cmd)
			}
		})

		It("walks back and forth to an empty buffer", func() {
			Expect(c.Previous()).To(Equal("bar"))
			Expect(c.Previous()).To(Equal("theme red"))
			Expect(c.Previous()).To(Equal("foo"))

			Expect(c.Next()).To(Equal("theme red"))
			Expect(c.Next()).To(Equal("bar"))
			Expect(c.Next()).To(BeEmpty())
			Expect(c.HistoryCursor()).To(Equal(-1))
		})

		It("stays pinned at the oldest entry", func() {
			for range 5 {
				c.Previous()
			}
			Expect(c.Input()).To(Equal("foo"))
			Expect(c.HistoryCursor()).To(Equal(2))
		})

		It("never changes the recorded history", func() {
			c.Previous()
			c.Next()
			c.Next()
			Expect(c.History()).To(Equal([]string{"foo", "theme red", "bar"}))
		})
	})

	Describe("cancellation", func() {
		It("drops an in-flight reveal on Clear", func() {
			c.Start()
			gen := c.Generation()
			c.Step()
			c.Clear()

			Expect(c.Generation()).NotTo(Equal(gen))
			Expect(c.Busy()).To(BeFalse())
			_, busy := c.Step()
			Expect(busy).To(BeFalse())
			Expect(c.Entries()).To(BeEmpty())
		})
	})
})
