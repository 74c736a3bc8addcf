package plugin

const supabaseClient = `import { createClient } from '@supabase/supabase-js'

export const supabase = createClient(
  process.env.NEXT_PUBLIC_SUPABASE_URL!,
  process.env.NEXT_PUBLIC_SUPABASE_ANON_KEY!,
)
`

const openaiClient = `import OpenAI from 'openai'

export const openai = new OpenAI({ apiKey: process.env.OPENAI_API_KEY })
`

const sentryClientConfig = `import * as Sentry from '@sentry/nextjs'

Sentry.init({
  dsn: process.env.SENTRY_DSN,
  tracesSampleRate: 1.0,
})
`

const sentryServerConfig = `import * as Sentry from '@sentry/nextjs'

Sentry.init({
  dsn: process.env.SENTRY_DSN,
  tracesSampleRate: 1.0,
})
`

const playwrightConfig = `import { defineConfig } from '@playwright/test'

export default defineConfig({
  testDir: './e2e',
  webServer: {
    command: 'npm run dev',
    url: 'http://localhost:3000',
    reuseExistingServer: true,
  },
})
`

const cypressConfig = `import { defineConfig } from 'cypress'

export default defineConfig({
  e2e: {
    baseUrl: 'http://localhost:3000',
  },
})
`

// Builtin returns the plugins shipped with the CLI, in catalog order.
func Builtin() []Plugin {
	return []Plugin{
		{
			ID:          "stripe",
			Name:        "Stripe Payments",
			Description: "Accept payments with Stripe",
			Category:    CategoryPayment,
			Packages:    []string{"stripe", "@stripe/stripe-js"},
			EnvVars: []EnvVar{
				{Key: "STRIPE_SECRET_KEY", Description: "Your Stripe secret key"},
				{Key: "NEXT_PUBLIC_STRIPE_PUBLISHABLE_KEY", Description: "Your Stripe publishable key"},
			},
		},
		{
			ID:          "paypal",
			Name:        "PayPal Payments",
			Description: "Accept payments with PayPal",
			Category:    CategoryPayment,
			Packages:    []string{"@paypal/react-paypal-js"},
			EnvVars: []EnvVar{
				{Key: "PAYPAL_CLIENT_ID", Description: "Your PayPal client ID"},
				{Key: "PAYPAL_CLIENT_SECRET", Description: "Your PayPal client secret"},
			},
		},
		{
			ID:          "clerk",
			Name:        "Clerk Auth",
			Description: "User authentication with Clerk",
			Category:    CategoryAuth,
			Packages:    []string{"@clerk/nextjs"},
			EnvVars: []EnvVar{
				{Key: "NEXT_PUBLIC_CLERK_PUBLISHABLE_KEY", Description: "Your Clerk publishable key"},
				{Key: "CLERK_SECRET_KEY", Description: "Your Clerk secret key"},
			},
		},
		{
			ID:          "nextauth",
			Name:        "NextAuth.js",
			Description: "Authentication for Next.js",
			Category:    CategoryAuth,
			Packages:    []string{"next-auth"},
			EnvVars: []EnvVar{
				{Key: "NEXTAUTH_SECRET", Description: "NextAuth secret key"},
				{Key: "NEXTAUTH_URL", Description: "Your app URL", Default: "http://localhost:3000"},
			},
		},
		{
			ID:          "auth0",
			Name:        "Auth0",
			Description: "Authentication with Auth0",
			Category:    CategoryAuth,
			Packages:    []string{"@auth0/nextjs-auth0"},
			EnvVars: []EnvVar{
				{Key: "AUTH0_SECRET", Description: "Auth0 secret"},
				{Key: "AUTH0_BASE_URL", Description: "Your app URL"},
				{Key: "AUTH0_ISSUER_BASE_URL", Description: "Auth0 domain"},
				{Key: "AUTH0_CLIENT_ID", Description: "Auth0 client ID"},
				{Key: "AUTH0_CLIENT_SECRET", Description: "Auth0 client secret"},
			},
		},
		{
			ID:          "supabase",
			Name:        "Supabase",
			Description: "Database and auth with Supabase",
			Category:    CategoryDatabase,
			Packages:    []string{"@supabase/supabase-js"},
			EnvVars: []EnvVar{
				{Key: "NEXT_PUBLIC_SUPABASE_URL", Description: "Your Supabase project URL"},
				{Key: "NEXT_PUBLIC_SUPABASE_ANON_KEY", Description: "Your Supabase anon key"},
			},
			Files: []File{
				{Path: "lib/supabase.ts", Content: supabaseClient},
			},
		},
		{
			ID:          "prisma",
			Name:        "Prisma ORM",
			Description: "Type-safe database ORM",
			Category:    CategoryDatabase,
			Packages:    []string{"prisma", "@prisma/client"},
			EnvVars: []EnvVar{
				{Key: "DATABASE_URL", Description: "Your database connection string", Required: true},
			},
		},
		{
			ID:          "mongodb",
			Name:        "MongoDB",
			Description: "MongoDB database integration",
			Category:    CategoryDatabase,
			Packages:    []string{"mongodb", "mongoose"},
			EnvVars: []EnvVar{
				{Key: "MONGODB_URI", Description: "Your MongoDB connection string", Required: true},
			},
		},
		{
			ID:          "firebase",
			Name:        "Firebase",
			Description: "Google Firebase services",
			Category:    CategoryDatabase,
			Packages:    []string{"firebase", "firebase-admin"},
			EnvVars: []EnvVar{
				{Key: "FIREBASE_PROJECT_ID", Description: "Your Firebase project ID"},
				{Key: "FIREBASE_PRIVATE_KEY", Description: "Firebase private key"},
				{Key: "FIREBASE_CLIENT_EMAIL", Description: "Firebase client email"},
			},
		},
		{
			ID:          "openai",
			Name:        "OpenAI",
			Description: "AI capabilities with OpenAI",
			Category:    CategoryAI,
			Packages:    []string{"openai"},
			EnvVars: []EnvVar{
				{Key: "OPENAI_API_KEY", Description: "Your OpenAI API key", Required: true},
			},
			Files: []File{
				{Path: "lib/openai.ts", Content: openaiClient},
			},
		},
		{
			ID:          "anthropic",
			Name:        "Anthropic Claude",
			Description: "AI capabilities with Claude",
			Category:    CategoryAI,
			Packages:    []string{"@anthropic-ai/sdk"},
			EnvVars: []EnvVar{
				{Key: "ANTHROPIC_API_KEY", Description: "Your Anthropic API key", Required: true},
			},
		},
		{
			ID:          "pinecone",
			Name:        "Pinecone Vector DB",
			Description: "Vector database for AI applications",
			Category:    CategoryAI,
			Packages:    []string{"@pinecone-database/pinecone"},
			EnvVars: []EnvVar{
				{Key: "PINECONE_API_KEY", Description: "Your Pinecone API key"},
				{Key: "PINECONE_ENVIRONMENT", Description: "Your Pinecone environment"},
			},
		},
		{
			ID:          "resend",
			Name:        "Resend Email",
			Description: "Email API for developers",
			Category:    CategoryCommunication,
			Packages:    []string{"resend"},
			EnvVars: []EnvVar{
				{Key: "RESEND_API_KEY", Description: "Your Resend API key"},
			},
		},
		{
			ID:          "sendgrid",
			Name:        "SendGrid",
			Description: "Email delivery service",
			Category:    CategoryCommunication,
			Packages:    []string{"@sendgrid/mail"},
			EnvVars: []EnvVar{
				{Key: "SENDGRID_API_KEY", Description: "Your SendGrid API key"},
			},
		},
		{
			ID:          "twilio",
			Name:        "Twilio",
			Description: "SMS and communication APIs",
			Category:    CategoryCommunication,
			Packages:    []string{"twilio"},
			EnvVars: []EnvVar{
				{Key: "TWILIO_ACCOUNT_SID", Description: "Your Twilio Account SID"},
				{Key: "TWILIO_AUTH_TOKEN", Description: "Your Twilio Auth Token"},
			},
		},
		{
			ID:          "uploadthing",
			Name:        "UploadThing",
			Description: "File uploads for Next.js",
			Category:    CategoryStorage,
			Packages:    []string{"uploadthing", "@uploadthing/react"},
			EnvVars: []EnvVar{
				{Key: "UPLOADTHING_SECRET", Description: "Your UploadThing secret"},
				{Key: "UPLOADTHING_APP_ID", Description: "Your UploadThing app ID"},
			},
		},
		{
			ID:          "cloudinary",
			Name:        "Cloudinary",
			Description: "Image and video management",
			Category:    CategoryStorage,
			Packages:    []string{"cloudinary", "next-cloudinary"},
			EnvVars: []EnvVar{
				{Key: "CLOUDINARY_CLOUD_NAME", Description: "Your Cloudinary cloud name"},
				{Key: "CLOUDINARY_API_KEY", Description: "Your Cloudinary API key"},
				{Key: "CLOUDINARY_API_SECRET", Description: "Your Cloudinary API secret"},
			},
		},
		{
			ID:          "analytics",
			Name:        "Vercel Analytics",
			Description: "Track user behavior",
			Category:    CategoryAnalytics,
			Packages:    []string{"@vercel/analytics"},
		},
		{
			ID:          "posthog",
			Name:        "PostHog",
			Description: "Product analytics and feature flags",
			Category:    CategoryAnalytics,
			Packages:    []string{"posthog-js", "posthog-node"},
			EnvVars: []EnvVar{
				{Key: "NEXT_PUBLIC_POSTHOG_KEY", Description: "Your PostHog project API key"},
				{Key: "NEXT_PUBLIC_POSTHOG_HOST", Description: "PostHog host URL", Default: "https://app.posthog.com"},
			},
		},
		{
			ID:          "sentry",
			Name:        "Sentry",
			Description: "Error tracking and performance monitoring",
			Category:    CategoryAnalytics,
			Packages:    []string{"@sentry/nextjs"},
			EnvVars: []EnvVar{
				{Key: "SENTRY_DSN", Description: "Your Sentry DSN"},
			},
			Files: []File{
				{Path: "sentry.client.config.ts", Content: sentryClientConfig},
				{Path: "sentry.server.config.ts", Content: sentryServerConfig},
			},
		},
		{
			ID:          "trpc",
			Name:        "tRPC",
			Description: "Type-safe APIs",
			Category:    CategoryAPI,
			Packages:    []string{"@trpc/server", "@trpc/client", "@trpc/react-query", "@trpc/next"},
		},
		{
			ID:          "tanstack",
			Name:        "TanStack Query",
			Description: "Data fetching and caching",
			Category:    CategoryAPI,
			Packages:    []string{"@tanstack/react-query", "@tanstack/react-query-devtools"},
		},
		{
			ID:          "apollo",
			Name:        "Apollo GraphQL",
			Description: "GraphQL client and server",
			Category:    CategoryAPI,
			Packages:    []string{"@apollo/client", "apollo-server-micro", "graphql"},
		},
		{
			ID:          "shadcn",
			Name:        "shadcn/ui",
			Description: "Beautiful UI components",
			Category:    CategoryUI,
			Packages:    []string{"@radix-ui/react-slot", "class-variance-authority", "clsx", "tailwind-merge"},
		},
		{
			ID:          "mantine",
			Name:        "Mantine",
			Description: "React components library",
			Category:    CategoryUI,
			Packages:    []string{"@mantine/core", "@mantine/hooks", "@mantine/notifications"},
		},
		{
			ID:          "chakra",
			Name:        "Chakra UI",
			Description: "Simple, modular and accessible UI",
			Category:    CategoryUI,
			Packages:    []string{"@chakra-ui/react", "@emotion/react", "@emotion/styled", "framer-motion"},
		},
		{
			ID:          "zustand",
			Name:        "Zustand",
			Description: "Lightweight state management",
			Category:    CategoryState,
			Packages:    []string{"zustand"},
		},
		{
			ID:          "redux",
			Name:        "Redux Toolkit",
			Description: "Predictable state container",
			Category:    CategoryState,
			Packages:    []string{"@reduxjs/toolkit", "react-redux"},
		},
		{
			ID:          "playwright",
			Name:        "Playwright",
			Description: "End-to-end testing",
			Category:    CategoryTesting,
			Packages:    []string{"@playwright/test"},
			Files: []File{
				{Path: "playwright.config.ts", Content: playwrightConfig},
			},
		},
		{
			ID:          "cypress",
			Name:        "Cypress",
			Description: "End-to-end testing framework",
			Category:    CategoryTesting,
			Packages:    []string{"cypress"},
			Files: []File{
				{Path: "cypress.config.ts", Content: cypressConfig},
			},
		},
	}
}
