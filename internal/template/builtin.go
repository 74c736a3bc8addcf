package template

// Builtin returns the templates shipped with the CLI.
func Builtin() []Template {
	return []Template{
		{
			ID:           "nextjs-saas",
			Name:         "Next.js SaaS Starter",
			Description:  "Production-ready SaaS with auth, payments, and dashboard",
			Tags:         []string{"nextjs", "typescript", "tailwind", "stripe", "clerk"},
			Repo:         "createforge/template-nextjs-saas",
			Featured:     true,
			BattleTested: true,
			HasTests:     true,
			HasSeedData:  true,
			PreviewURL:   "https://stackblitz.com/github/createforge/template-nextjs-saas",
		},
		{
			ID:           "mern-stack",
			Name:         "MERN Stack App",
			Description:  "MongoDB, Express, React, Node.js with authentication",
			Tags:         []string{"mongodb", "express", "react", "nodejs", "jwt"},
			Repo:         "createforge/template-mern-stack",
			Featured:     true,
			BattleTested: true,
			HasTests:     true,
			HasSeedData:  true,
			PreviewURL:   "https://stackblitz.com/github/createforge/template-mern-stack",
		},
		{
			ID:           "ai-rag",
			Name:         "AI RAG Chat App",
			Description:  "Retrieval-Augmented Generation chat with vector search",
			Tags:         []string{"nextjs", "openai", "pinecone", "langchain"},
			Repo:         "createforge/template-ai-rag",
			Featured:     true,
			BattleTested: true,
			HasTests:     true,
			HasSeedData:  true,
			PreviewURL:   "https://stackblitz.com/github/createforge/template-ai-rag",
		},
		{
			ID:           "ecommerce",
			Name:         "E-commerce Store",
			Description:  "Full-featured store with cart, checkout, and admin",
			Tags:         []string{"nextjs", "stripe", "shopify", "tailwind"},
			Repo:         "createforge/template-ecommerce",
			Featured:     true,
			BattleTested: true,
			HasTests:     true,
			HasSeedData:  true,
		},
		{
			ID:           "mern-ecommerce",
			Name:         "MERN E-commerce",
			Description:  "Full-stack e-commerce with React, Node.js, MongoDB",
			Tags:         []string{"mongodb", "express", "react", "nodejs", "stripe"},
			Repo:         "createforge/template-mern-ecommerce",
			BattleTested: true,
			HasTests:     true,
			HasSeedData:  true,
		},
		{
			ID:           "mean-stack",
			Name:         "MEAN Stack App",
			Description:  "MongoDB, Express, Angular, Node.js application",
			Tags:         []string{"mongodb", "express", "angular", "nodejs", "typescript"},
			Repo:         "createforge/template-mean-stack",
			BattleTested: true,
			HasTests:     true,
			HasSeedData:  true,
		},
		{
			ID:           "mevn-stack",
			Name:         "MEVN Stack App",
			Description:  "MongoDB, Express, Vue.js, Node.js application",
			Tags:         []string{"mongodb", "express", "vuejs", "nodejs", "typescript"},
			Repo:         "createforge/template-mevn-stack",
			BattleTested: true,
			HasTests:     true,
			HasSeedData:  true,
		},
		{
			ID:           "t3-stack",
			Name:         "T3 Stack App",
			Description:  "Next.js, tRPC, Prisma, Tailwind, NextAuth",
			Tags:         []string{"nextjs", "trpc", "prisma", "tailwind", "nextauth"},
			Repo:         "createforge/template-t3-stack",
			BattleTested: true,
			HasTests:     true,
			HasSeedData:  true,
		},
		{
			ID:           "remix-app",
			Name:         "Remix Full-Stack",
			Description:  "Remix with Prisma, Tailwind, and authentication",
			Tags:         []string{"remix", "prisma", "tailwind", "typescript"},
			Repo:         "createforge/template-remix-app",
			BattleTested: true,
			HasTests:     true,
			HasSeedData:  true,
		},
		{
			ID:           "sveltekit-app",
			Name:         "SvelteKit App",
			Description:  "SvelteKit with Prisma, Tailwind, and Supabase",
			Tags:         []string{"sveltekit", "prisma", "tailwind", "supabase"},
			Repo:         "createforge/template-sveltekit-app",
			BattleTested: true,
			HasTests:     true,
			HasSeedData:  true,
		},
		{
			ID:           "astro-blog",
			Name:         "Astro Blog",
			Description:  "Lightning-fast blog with Astro and MDX",
			Tags:         []string{"astro", "mdx", "tailwind", "typescript"},
			Repo:         "createforge/template-astro-blog",
			BattleTested: true,
			HasTests:     true,
			HasSeedData:  true,
		},
		{
			ID:           "solid-start",
			Name:         "SolidStart App",
			Description:  "SolidJS with SolidStart meta-framework",
			Tags:         []string{"solidjs", "solidstart", "tailwind", "typescript"},
			Repo:         "createforge/template-solid-start",
			BattleTested: true,
			HasTests:     true,
			HasSeedData:  true,
		},
		{
			ID:           "express-api",
			Name:         "Express REST API",
			Description:  "Express.js REST API with MongoDB and JWT auth",
			Tags:         []string{"express", "mongodb", "jwt", "swagger", "typescript"},
			Repo:         "createforge/template-express-api",
			BattleTested: true,
			HasTests:     true,
			HasSeedData:  true,
		},
		{
			ID:           "fastify-api",
			Name:         "Fastify REST API",
			Description:  "High-performance API with Fastify and Prisma",
			Tags:         []string{"fastify", "prisma", "swagger", "typescript"},
			Repo:         "createforge/template-fastify-api",
			BattleTested: true,
			HasTests:     true,
			HasSeedData:  true,
		},
		{
			ID:           "graphql-api",
			Name:         "GraphQL API",
			Description:  "GraphQL API with Apollo Server and Prisma",
			Tags:         []string{"graphql", "apollo", "prisma", "typescript"},
			Repo:         "createforge/template-graphql-api",
			BattleTested: true,
			HasTests:     true,
			HasSeedData:  true,
		},
		{
			ID:           "trpc-api",
			Name:         "tRPC API",
			Description:  "Type-safe API with tRPC and Prisma",
			Tags:         []string{"trpc", "prisma", "zod", "typescript"},
			Repo:         "createforge/template-trpc-api",
			BattleTested: true,
			HasTests:     true,
			HasSeedData:  true,
		},
		{
			ID:           "react-native",
			Name:         "React Native App",
			Description:  "Cross-platform mobile app with Expo",
			Tags:         []string{"react-native", "expo", "typescript", "navigation"},
			Repo:         "createforge/template-react-native",
			BattleTested: true,
			HasTests:     true,
			HasSeedData:  true,
		},
		{
			ID:           "flutter-app",
			Name:         "Flutter App",
			Description:  "Cross-platform mobile app with Flutter",
			Tags:         []string{"flutter", "dart", "firebase", "bloc"},
			Repo:         "createforge/template-flutter-app",
			BattleTested: true,
			HasTests:     true,
			HasSeedData:  true,
		},
		{
			ID:           "electron-app",
			Name:         "Electron Desktop App",
			Description:  "Cross-platform desktop app with React",
			Tags:         []string{"electron", "react", "typescript", "tailwind"},
			Repo:         "createforge/template-electron-app",
			BattleTested: true,
			HasTests:     true,
			HasSeedData:  true,
		},
		{
			ID:           "nextjs-blog",
			Name:         "Next.js Blog",
			Description:  "Modern blog with MDX, SEO, and analytics",
			Tags:         []string{"nextjs", "mdx", "tailwind"},
			Repo:         "createforge/template-nextjs-blog",
			BattleTested: true,
			HasTests:     true,
			HasSeedData:  true,
		},
		{
			ID:           "portfolio",
			Name:         "Developer Portfolio",
			Description:  "Stunning portfolio with animations and CMS",
			Tags:         []string{"nextjs", "framer-motion", "sanity", "tailwind"},
			Repo:         "createforge/template-portfolio",
			BattleTested: true,
			HasTests:     true,
			HasSeedData:  true,
		},
		{
			ID:           "dashboard",
			Name:         "Admin Dashboard",
			Description:  "Feature-rich admin dashboard with charts",
			Tags:         []string{"nextjs", "recharts", "tailwind", "prisma"},
			Repo:         "createforge/template-dashboard",
			BattleTested: true,
			HasTests:     true,
			HasSeedData:  true,
		},
		{
			ID:           "landing-page",
			Name:         "Landing Page",
			Description:  "High-converting landing page with animations",
			Tags:         []string{"nextjs", "framer-motion", "tailwind", "analytics"},
			Repo:         "createforge/template-landing-page",
			BattleTested: true,
			HasTests:     true,
			HasSeedData:  true,
		},
		{
			ID:           "microservices",
			Name:         "Microservices Starter",
			Description:  "Docker-based microservices with API Gateway",
			Tags:         []string{"docker", "kubernetes", "nodejs", "redis", "nginx"},
			Repo:         "createforge/template-microservices",
			BattleTested: true,
			HasTests:     true,
			HasSeedData:  true,
		},
		{
			ID:           "serverless",
			Name:         "Serverless Functions",
			Description:  "AWS Lambda functions with Serverless Framework",
			Tags:         []string{"serverless", "aws", "lambda", "dynamodb", "typescript"},
			Repo:         "createforge/template-serverless",
			BattleTested: true,
			HasTests:     true,
			HasSeedData:  true,
		},
		{
			ID:           "edge-functions",
			Name:         "Edge Functions",
			Description:  "Vercel Edge Functions with global deployment",
			Tags:         []string{"vercel", "edge-functions", "typescript", "kv"},
			Repo:         "createforge/template-edge-functions",
			BattleTested: true,
			HasTests:     true,
			HasSeedData:  true,
		},
	}
}

// BuiltinCategories indexes the built-in templates by category. A template may
// appear under several categories.
func BuiltinCategories() map[string][]string {
	return map[string][]string{
		"full-stack": {"mern-stack", "mean-stack", "mevn-stack", "t3-stack", "remix-app", "sveltekit-app"},
		"frontend":   {"nextjs-saas", "nextjs-blog", "astro-blog", "solid-start", "portfolio", "landing-page"},
		"backend":    {"express-api", "fastify-api", "graphql-api", "trpc-api"},
		"mobile":     {"react-native", "flutter-app"},
		"desktop":    {"electron-app"},
		"ecommerce":  {"ecommerce", "mern-ecommerce"},
		"ai":         {"ai-rag"},
		"blog":       {"nextjs-blog", "astro-blog"},
		"saas":       {"nextjs-saas", "dashboard"},
		"cloud":      {"microservices", "serverless", "edge-functions"},
	}
}

// NewBuiltinCatalog builds the catalog of built-in templates.
func NewBuiltinCatalog() (*Catalog, error) {
	return NewCatalog(Builtin(), BuiltinCategories())
}
