package templating

const (
	// DefaultIndexTemplate is used for the site index when no template file is given.
	DefaultIndexTemplate = `<!-- DOCTYPE html --><html><head><meta http-equiv="Content-Type" content="text/html; charset=UTF-8"><meta name="viewport" content="width=device-width, initial-scale=1.0"><title>{{blogname}}</title><meta name="description" content="{{blogdesc}}"><meta name="robots" content="index, follow"><link rel="stylesheet" type="text/css" href="style.css"/></head><body><main><header>{{blogname}}</header><div class="postmeta">{{blogdesc}}</div><content id="index">{{content}}</content><footer>Created with purpleblog</footer></main></body></html>`

	// DefaultPostTemplate is used for post pages when no template file is given.
	DefaultPostTemplate = `<!-- DOCTYPE html --><html><head><meta http-equiv="Content-Type" content="text/html; charset=UTF-8"><meta name="viewport" content="width=device-width, initial-scale=1.0"><title>{{title}} | {{blogname}}</title><meta name="description" content="{{summary}}"><meta name="robots" content="index, follow"><link rel="stylesheet" type="text/css" href="../style.css"/></head><body><main><header>{{title}}</header><div class="postmeta">{{published}} • on <a href="../">{{blogname}}</a></div><content>{{content}}</content><footer>Created with purpleblog</footer></main></body></html>`
)
