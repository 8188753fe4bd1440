package generation

import "strings"

// The canned artifact catalog. Generation is simulated: prompts are routed
// to one of these named components by keyword.
const (
	ComponentHeroSection  = "Hero Section"
	ComponentFeatureCards = "Feature Cards"
	ComponentStatsSection = "Stats Section"
)

const heroSectionCode = `import { Button } from "@/components/ui/button"
import { ArrowRight, Zap } from "lucide-react"

export function Hero() {
  return (
    <div className="space-y-8">
      <div className="space-y-4 text-center">
        <div className="inline-flex items-center gap-2 px-3 py-1 bg-accent/20 text-accent rounded-full text-sm font-medium">
          <Zap className="h-4 w-4" />
          New Release
        </div>
        <h1 className="text-4xl font-bold tracking-tight text-foreground">
          Build faster with AI-powered development
        </h1>
        <p className="text-muted-foreground max-w-lg mx-auto">
          Transform your ideas into production-ready code in seconds.
        </p>
        <div className="flex items-center justify-center gap-3 pt-2">
          <Button size="lg" className="gap-2">
            Get Started <ArrowRight className="h-4 w-4" />
          </Button>
          <Button size="lg" variant="outline">
            View Demo
          </Button>
        </div>
      </div>
    </div>
  )
}`

const featureCardsCode = `import { Card, CardContent, CardDescription, CardHeader, CardTitle } from "@/components/ui/card"
import { Zap, Shield, Layers, Code } from "lucide-react"

const features = [
  {
    icon: Zap,
    title: "Lightning Fast",
    description: "Generate components in milliseconds.",
  },
  {
    icon: Shield,
    title: "Type Safe",
    description: "Full TypeScript support with proper types.",
  },
  {
    icon: Layers,
    title: "Composable",
    description: "Modular components that work together.",
  },
  {
    icon: Code,
    title: "Clean Code",
    description: "Production-ready code following best practices.",
  },
]

export function FeatureCards() {
  return (
    <div className="grid grid-cols-1 md:grid-cols-2 gap-4">
      {features.map((feature) => (
        <Card key={feature.title}>
          <CardHeader className="pb-2">
            <div className="w-10 h-10 rounded-lg bg-accent/20 flex items-center justify-center mb-2">
              <feature.icon className="h-5 w-5 text-accent" />
            </div>
            <CardTitle className="text-lg">{feature.title}</CardTitle>
          </CardHeader>
          <CardContent>
            <CardDescription>{feature.description}</CardDescription>
          </CardContent>
        </Card>
      ))}
    </div>
  )
}`

const statsSectionCode = `const stats = [
  { value: "10M+", label: "Components Generated" },
  { value: "50K+", label: "Active Developers" },
  { value: "99.9%", label: "Uptime" },
  { value: "<100ms", label: "Avg Response" },
]

export function Stats() {
  return (
    <div className="grid grid-cols-2 md:grid-cols-4 gap-6 py-8 border-y border-border">
      {stats.map((stat) => (
        <div key={stat.label} className="text-center">
          <div className="text-3xl font-bold text-foreground">
            {stat.value}
          </div>
          <div className="text-sm text-muted-foreground mt-1">
            {stat.label}
          </div>
        </div>
      ))}
    </div>
  )
}`

var catalogCode = map[string]string{
	ComponentHeroSection:  heroSectionCode,
	ComponentFeatureCards: featureCardsCode,
	ComponentStatsSection: statsSectionCode,
}

// CatalogCode returns the code payload for a catalog component name.
func CatalogCode(name string) (string, bool) {
	code, ok := catalogCode[name]
	return code, ok
}

// RouteComponentName picks the catalog component for a prompt. Category
// checks run in a fixed order with the last matching one winning; prompts
// matching nothing fall back to the hero section.
func RouteComponentName(prompt string) string {
	name := ComponentHeroSection
	lower := strings.ToLower(prompt)

	if containsAny(lower, "hero", "landing", "header") {
		name = ComponentHeroSection
	}
	if containsAny(lower, "card", "feature", "grid") {
		name = ComponentFeatureCards
	}
	if containsAny(lower, "stat", "number", "metric") {
		name = ComponentStatsSection
	}
	return name
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
