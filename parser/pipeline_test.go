package parser_test

import (
	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/corewar/redcode/parser"
)

var _ = Describe("Parser", func() {
	var (
		mockCtrl  *gomock.Controller
		mockLexer *MockLexer
		first     *MockPass
		second    *MockPass
		p         *parser.Parser
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mockLexer = NewMockLexer(mockCtrl)
		first = NewMockPass(mockCtrl)
		second = NewMockPass(mockCtrl)
		p = parser.New(mockLexer, first, second)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should run the passes in order", func() {
		scanned := parser.NewContext()
		processed := parser.NewContext()
		final := parser.NewContext()
		final.Start = 3

		gomock.InOrder(
			mockLexer.EXPECT().Scan("MOV 0, 1", parser.DefaultOptions).Return(scanned),
			first.EXPECT().Process(scanned, parser.DefaultOptions).Return(processed),
			second.EXPECT().Process(processed, parser.DefaultOptions).Return(final),
		)

		result := p.Parse("MOV 0, 1", parser.DefaultOptions)

		Expect(result.Start).To(Equal(3))
	})

	It("should keep running after a pass reports an error", func() {
		context := parser.NewContext()
		failed := parser.NewContext()
		failed.AddMessages(parser.Errors.UndefinedLabel(parser.Token{Category: parser.Label, Lexeme: "x"}))

		mockLexer.EXPECT().Scan(gomock.Any(), gomock.Any()).Return(context)
		first.EXPECT().Process(context, gomock.Any()).Return(failed)
		second.EXPECT().Process(failed, gomock.Any()).Return(failed)

		result := p.Parse("JMP x", parser.DefaultOptions)

		Expect(result.Messages).To(HaveLen(1))
		Expect(result.Failed(false)).To(BeTrue())
	})

	It("should fill in missing sizes", func() {
		context := parser.NewContext()
		options := parser.Options{Standard: parser.ICWS88}
		expected := parser.DefaultOptions
		expected.Standard = parser.ICWS88
		expected.MaxLength = 0

		mockLexer.EXPECT().Scan("", expected).Return(context)
		first.EXPECT().Process(context, expected).Return(context)
		second.EXPECT().Process(context, expected).Return(context)

		p.Parse("", options)
	})
})

var _ = Describe("Compile", func() {
	It("should produce a load file for every standard", func() {
		for _, standard := range []parser.Standard{parser.ICWS86, parser.ICWS88, parser.ICWS94Draft} {
			options := parser.DefaultOptions
			options.Standard = standard

			result, loadFile := parser.Compile("imp MOV imp, imp+1", options)

			Expect(result.Messages).To(BeEmpty())
			Expect(loadFile).To(Equal("MOV.I $0, $1\n"))
		}
	})

	It("should report positions of the source", func() {
		result, _ := parser.Compile("\n\n   JMP   missing", parser.DefaultOptions)

		Expect(result.Messages).To(HaveLen(1))
		Expect(result.Messages[0].Position).To(Equal(parser.Position{Line: 3, Char: 10}))
	})
})
