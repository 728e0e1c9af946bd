package template

import "time"

// Builtins returns the fixed set of built-in templates seeded on first
// startup, in insertion order. CreatedAt is stamped at call time.
func Builtins() []*Template {
	now := time.Now().UTC()
	ts := []*Template{
		{
			ID:          "template_article",
			Name:        "Academic Article",
			Description: "Standard academic article format with abstract, sections, and bibliography",
			Category:    "academic",
			Content:     articleContent,
		},
		{
			ID:          "template_report",
			Name:        "Business Report",
			Description: "Professional business report template with executive summary",
			Category:    "business",
			Content:     reportContent,
		},
		{
			ID:          "template_presentation",
			Name:        "Presentation Slides",
			Description: "LaTeX Beamer presentation template",
			Category:    "presentation",
			Content:     presentationContent,
		},
		{
			ID:          "template_math",
			Name:        "Mathematical Document",
			Description: "Template for mathematical proofs and theorems",
			Category:    "academic",
			Content:     mathContent,
		},
		{
			ID:          "template_letter",
			Name:        "Formal Letter",
			Description: "Professional letter template",
			Category:    "business",
			Content:     letterContent,
		},
	}
	for _, t := range ts {
		t.IsBuiltin = true
		t.CreatedAt = now
		t.Metadata = map[string]interface{}{}
	}
	return ts
}

const articleContent = `\documentclass[12pt]{article}
\usepackage[utf8]{inputenc}
\usepackage{amsmath}
\usepackage{amsfonts}
\usepackage{amssymb}
\usepackage{geometry}
\geometry{margin=1in}

\title{Your Title Here}
\author{Your Name}
\date{\today}

\begin{document}

\maketitle

\begin{abstract}
Your abstract goes here. This should be a brief summary of your work.
\end{abstract}

\section{Introduction}
Your introduction content goes here.

\section{Methodology}
Describe your methodology here.

\section{Results}
Present your results here.

\section{Conclusion}
Your conclusions go here.

\bibliographystyle{plain}
\bibliography{references}

\end{document}`

const reportContent = `\documentclass[12pt]{report}
\usepackage[utf8]{inputenc}
\usepackage{geometry}
\usepackage{graphicx}
\usepackage{fancyhdr}
\geometry{margin=1in}

\pagestyle{fancy}
\fancyhf{}
\rhead{\thepage}
\lhead{Business Report}

\title{Business Report Title}
\author{Company Name}
\date{\today}

\begin{document}

\maketitle

\chapter{Executive Summary}
Provide a high-level overview of the report findings and recommendations.

\chapter{Introduction}
Introduce the purpose and scope of this report.

\chapter{Analysis}
Present your detailed analysis here.

\chapter{Recommendations}
Provide actionable recommendations based on your analysis.

\chapter{Conclusion}
Summarize the key points and next steps.

\end{document}`

const presentationContent = `\documentclass{beamer}
\usetheme{Madrid}
\usecolortheme{default}

\title{Your Presentation Title}
\author{Your Name}
\institute{Your Institution}
\date{\today}

\begin{document}

\frame{\titlepage}

\begin{frame}
\frametitle{Outline}
\tableofcontents
\end{frame}

\section{Introduction}
\begin{frame}
\frametitle{Introduction}
\begin{itemize}
    \item First point
    \item Second point
    \item Third point
\end{itemize}
\end{frame}

\section{Main Content}
\begin{frame}
\frametitle{Main Point}
Your main content goes here.
\end{frame}

\section{Conclusion}
\begin{frame}
\frametitle{Conclusion}
\begin{itemize}
    \item Summary point 1
    \item Summary point 2
    \item Thank you!
\end{itemize}
\end{frame}

\end{document}`

const mathContent = `\documentclass[12pt]{article}
\usepackage[utf8]{inputenc}
\usepackage{amsmath}
\usepackage{amsthm}
\usepackage{amssymb}
\usepackage{geometry}
\geometry{margin=1in}

\newtheorem{theorem}{Theorem}
\newtheorem{lemma}{Lemma}
\newtheorem{corollary}{Corollary}
\newtheorem{definition}{Definition}

\title{Mathematical Document}
\author{Your Name}
\date{\today}

\begin{document}

\maketitle

\section{Introduction}
This document demonstrates mathematical typesetting in LaTeX.

\begin{definition}
A function $f: \mathbb{R} \to \mathbb{R}$ is continuous at $x = a$ if...
\end{definition}

\begin{theorem}
For any continuous function $f$ on $[a,b]$, we have:
\begin{equation}
\int_a^b f(x) dx = F(b) - F(a)
\end{equation}
where $F$ is an antiderivative of $f$.
\end{theorem}

\begin{proof}
The proof follows from the Fundamental Theorem of Calculus...
\end{proof}

\section{Examples}
\begin{align}
\frac{d}{dx}\left(\sin(x)\right) &= \cos(x) \\
\frac{d}{dx}\left(e^x\right) &= e^x \\
\frac{d}{dx}\left(\ln(x)\right) &= \frac{1}{x}
\end{align}

\end{document}`

const letterContent = `\documentclass[12pt]{letter}
\usepackage[utf8]{inputenc}
\usepackage{geometry}
\geometry{margin=1in}

\signature{Your Name}
\address{Your Address \\ City, State ZIP \\ Email: your.email@example.com}

\begin{document}

\begin{letter}{Recipient Name \\ Recipient Address \\ City, State ZIP}

\opening{Dear [Recipient Name],}

This is the body of your letter. Write your message here with proper paragraphs and formatting.

Second paragraph continues your message with additional details or information you want to convey.

\closing{Sincerely,}

\end{letter}

\end{document}`
