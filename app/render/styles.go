package render

// styles is the inline stylesheet prepended to every rendered article. The
// platform strips external stylesheets, so everything has to travel with
// the content.
const styles = `<style>
body {
    font-family: -apple-system, "PingFang SC", "Hiragino Sans GB", "Microsoft YaHei", "Segoe UI", Roboto, Arial, sans-serif;
    font-size: 17px;
    line-height: 1.75;
    color: #2c3e50;
    margin: 0;
    padding: 24px;
    background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
}

.content {
    max-width: 100%;
    margin: 0 auto;
    background: #ffffff;
    border-radius: 16px;
    padding: 32px;
    box-shadow: 0 20px 40px rgba(0, 0, 0, 0.1);
}

h1 {
    font-size: 2.2em;
    font-weight: 800;
    color: #2c3e50;
    text-align: center;
    margin: 2em 0 1.5em;
    padding: 20px 0;
}

h2 {
    font-size: 1.6em;
    font-weight: 700;
    color: #34495e;
    margin: 2.5em 0 1.2em;
    padding: 16px 24px;
    background: linear-gradient(135deg, #f8fafc 0%, #e2e8f0 100%);
    border-left: 5px solid #667eea;
    border-radius: 0 12px 12px 0;
}

h3 {
    font-size: 1.3em;
    font-weight: 600;
    color: #e74c3c;
    margin: 2em 0 1em;
    padding: 8px 16px;
    border-left: 3px solid #e74c3c;
    border-radius: 0 8px 8px 0;
}

p {
    margin: 1.5em 0;
    text-align: justify;
    line-height: 1.8;
    font-size: 17px;
    color: #34495e;
}

strong {
    color: #2c3e50;
    font-weight: 700;
    background: linear-gradient(120deg, #84fab0 0%, #8fd3f4 100%);
    padding: 3px 8px;
    border-radius: 6px;
}

em {
    color: #e74c3c;
    font-style: normal;
    font-weight: 600;
    background: linear-gradient(120deg, #ffeaa7 0%, #fab1a0 100%);
    padding: 2px 6px;
    border-radius: 4px;
}

code {
    background: #f8fafc;
    padding: 4px 8px;
    border-radius: 6px;
    color: #e91e63;
    font-size: 0.9em;
    border: 1px solid #e2e8f0;
    font-family: "Fira Code", "JetBrains Mono", Consolas, monospace;
}

pre {
    background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
    padding: 24px;
    border-radius: 12px;
    overflow-x: auto;
    margin: 2em 0;
    color: #ffffff;
    font-family: "Fira Code", "JetBrains Mono", Consolas, monospace;
}

pre code {
    background: transparent;
    border: none;
    color: inherit;
    padding: 0;
}

blockquote {
    border-left: 5px solid #667eea;
    margin: 2em 0;
    padding: 20px 24px;
    background: linear-gradient(135deg, #f8fafc 0%, #e2e8f0 100%);
    border-radius: 0 12px 12px 0;
}

ul, ol {
    margin: 1.5em 0;
    padding-left: 2em;
}

li {
    margin: 1em 0;
    line-height: 1.7;
}

img {
    max-width: 100%;
    height: auto;
    border-radius: 16px;
    margin: 2em auto;
    display: block;
    box-shadow: 0 12px 40px rgba(0, 0, 0, 0.15);
}

.img-container {
    text-align: center;
    margin: 2.5em 0;
    padding: 16px;
    background: linear-gradient(135deg, #f8fafc 0%, #e2e8f0 100%);
    border-radius: 20px;
}

.img-caption {
    text-align: center;
    color: #64748b;
    font-size: 15px;
    margin-top: 12px;
    font-style: italic;
}

.table-container {
    overflow-x: auto;
    margin: 2em 0;
    border-radius: 12px;
    background: #ffffff;
}

table {
    border-collapse: collapse;
    width: 100%;
    margin: 0;
    font-size: 0.95em;
    background: #ffffff;
}

th, td {
    border: 1px solid #e2e8f0;
    padding: 16px 20px;
    text-align: left;
}

th {
    background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
    color: #ffffff;
    font-weight: 700;
}

tr:nth-child(even) {
    background: #f8fafc;
}

a {
    color: #667eea;
    text-decoration: none;
    font-weight: 500;
}

hr {
    border: none;
    height: 2px;
    background: linear-gradient(90deg, transparent, #667eea, transparent);
    margin: 3em 0;
}

.section-divider {
    text-align: center;
    margin: 3em 0;
}

.section-divider span {
    color: #667eea;
    font-size: 16px;
    font-weight: 600;
}
</style>`
